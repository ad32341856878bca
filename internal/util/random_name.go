package util

import (
	"carddeck/pkg/rng"
	"fmt"
)

var adjectives = []string{
	"Fast", "Slow", "Quick", "Speedy", "Trotting", "Weaving", "Waiving", "Gracious", "Healthy", "Happy", "Funny",
	"Red", "Blue", "Green", "Orange", "Purple", "Fuzzy", "Smiling", "Tall", "Grand", "Ultimate", "Prime",
	"Alpha", "Growling", "Slithering", "Swimming", "Flying", "Jumping", "Running", "Charging", "Shooting", "Bouncing",
	"Bounding", "Leaping",
}

var animals = []string{
	"Dog", "Cat", "Mouse", "Alligator", "Crocodile", "Shark", "Hippo", "Giraffe", "Antelope", "Lion", "Tiger",
	"Bear", "Muskrat", "Otter", "Dolphin", "Porcupine", "Gerbil", "Hedgehog", "Snake", "Lizard", "Chipmunk",
	"Bird", "Dinosaur", "Okapi", "Eagle", "Mandrill", "Bonobo", "Wolf", "Fox", "Armadillo", "Rhino", "Anteater",
	"Reindeer", "Deer", "Panda",
}

// GetRandomName returns a random name by combining an adjective with an animal
func GetRandomName(g rng.Generator) string {
	adjectivesIndex := g.Intn(len(adjectives))
	animalsIndex := g.Intn(len(animals))

	return fmt.Sprintf("%s %s", adjectives[adjectivesIndex], animals[animalsIndex])
}

// GetRandomNames returns n distinct names
// Once a name repeats, a number is appended to it
func GetRandomNames(g rng.Generator, n int) []string {
	names := make([]string, 0, n)
	seen := make(map[string]int, n)
	for len(names) < n {
		name := GetRandomName(g)
		seen[name]++
		if count := seen[name]; count > 1 {
			name = fmt.Sprintf("%s %d", name, count)
		}

		names = append(names, name)
	}

	return names
}
