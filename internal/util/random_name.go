package util

import (
	"fmt"
	"math/rand"
)

var random = rand.New(rand.NewSource(rand.Int63())) // nolint:gosec

var adjectives = []string{
	"Stomping", "Roaring", "Sneaky", "Hungry", "Feathered", "Armored", "Spiky", "Mighty", "Tiny", "Ancient",
	"Swift", "Lumbering", "Clever", "Toothy", "Scaly", "Thundering", "Gentle", "Cranky", "Curious", "Brave",
	"Amber", "Jade", "Crimson", "Dusty", "Prowling", "Soaring", "Wading", "Grazing", "Charging", "Napping",
}

var dinosaurs = []string{
	"Rex", "Raptor", "Triceratops", "Stegosaurus", "Brachiosaurus", "Ankylosaurus", "Pterodactyl", "Spinosaurus",
	"Diplodocus", "Allosaurus", "Parasaurolophus", "Iguanodon", "Pachycephalosaurus", "Gallimimus", "Dilophosaurus",
	"Carnotaurus", "Therizinosaurus", "Mosasaurus", "Archaeopteryx", "Compsognathus", "Troodon", "Oviraptor",
}

// GetRandomName returns a random name by combining an adjective with a dinosaur
func GetRandomName() string {
	adjectivesIndex := random.Intn(len(adjectives))
	dinosaursIndex := random.Intn(len(dinosaurs))

	return fmt.Sprintf("%s %s", adjectives[adjectivesIndex], dinosaurs[dinosaursIndex])
}
