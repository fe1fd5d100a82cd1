package pictionary

// wordList is the pool the drawer's three choices are drawn from
var wordList = []string{
	"airplane", "anchor", "apple", "balloon", "banana", "beach", "bicycle",
	"bird", "boat", "bone", "book", "bridge", "bus", "butterfly", "cactus",
	"camera", "campfire", "candle", "castle", "caveman", "cheese", "clock",
	"cloud", "crab", "crocodile", "crown", "dinosaur", "dragon", "drum",
	"eagle", "egg", "elephant", "feather", "fence", "fish", "flashlight",
	"flower", "footprint", "fossil", "ghost", "giraffe", "guitar", "hammer",
	"hat", "helicopter", "igloo", "island", "jellyfish", "kangaroo", "kite",
	"ladder", "lighthouse", "lizard", "mammoth", "meteor", "moon", "mountain",
	"mushroom", "nest", "octopus", "owl", "palm tree", "parrot", "penguin",
	"piano", "pineapple", "pterodactyl", "pyramid", "rainbow", "raptor",
	"robot", "rocket", "sandcastle", "scooter", "shark", "skeleton", "snail",
	"snake", "snowman", "spider", "stegosaurus", "submarine", "sun", "swing",
	"tail", "telescope", "tent", "tractor", "train", "treasure", "tree",
	"triceratops", "turtle", "umbrella", "volcano", "waterfall", "whale",
	"windmill", "wing", "wizard",
}
