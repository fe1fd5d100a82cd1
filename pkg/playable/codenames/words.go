package codenames

// wordList is the pool the 25-word board is drawn from
var wordList = []string{
	"amber", "anchor", "arrow", "badge", "bank", "beach", "bolt", "bridge",
	"cactus", "canyon", "castle", "cave", "claw", "cliff", "comet", "compass",
	"crane", "crater", "crown", "dragon", "drill", "eagle", "echo", "engine",
	"fang", "feather", "fern", "fossil", "galaxy", "geyser", "glacier", "hammer",
	"harbor", "hatch", "horizon", "hunter", "island", "jungle", "lantern", "lava",
	"lizard", "magnet", "mammoth", "marsh", "meteor", "mountain", "nest", "orbit",
	"oyster", "pilot", "plume", "pyramid", "quarry", "raptor", "reef", "ridge",
	"river", "robot", "rocket", "saddle", "scale", "shadow", "shell", "signal",
	"spike", "spiral", "storm", "summit", "swamp", "tail", "talon", "temple",
	"thunder", "tide", "torch", "tornado", "tower", "trail", "trench", "tunnel",
	"valley", "venom", "volcano", "wave", "whale", "wing",
}
