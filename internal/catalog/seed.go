// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package catalog

import (
	"recipebox/internal/models"
	"recipebox/internal/slug"
)

// Seed returns a fresh copy of the built-in recipe collection. Ids are 1..8
// in collection order.
func Seed() []models.Recipe {
	recipes := []models.Recipe{
		{
			ID:          1,
			Title:       "Spaghetti Carbonara",
			Difficulty:  models.DifficultyMedium,
			Time:        25,
			Description: "Roman pasta with a silky egg and *pecorino* sauce. No cream.",
			Ingredients: []string{"400g spaghetti", "150g guanciale", "4 egg yolks", "60g pecorino romano", "black pepper"},
			Steps: []models.Step{
				models.Plain("Bring a large pot of salted water to the boil."),
				models.Composite("Prepare the sauce",
					models.Plain("Whisk the yolks with the grated pecorino."),
					models.Plain("Season generously with cracked black pepper."),
				),
				models.Plain("Crisp the guanciale in a dry pan."),
				models.Composite("Combine off the heat",
					models.Plain("Toss the drained pasta with the guanciale."),
					models.Plain("Stir in the egg mixture, loosening with pasta water."),
				),
			},
		},
		{
			ID:          2,
			Title:       "Grilled Cheese Sandwich",
			Difficulty:  models.DifficultyEasy,
			Time:        10,
			Description: "Golden, buttery bread around a molten cheddar centre.",
			Ingredients: []string{"2 slices sourdough", "butter", "80g cheddar"},
			Steps: []models.Step{
				models.Plain("Butter the outside of each slice."),
				models.Plain("Layer the cheddar between the slices."),
				models.Plain("Cook over medium heat until golden on both sides."),
			},
		},
		{
			ID:          3,
			Title:       "Beef Wellington",
			Difficulty:  models.DifficultyHard,
			Time:        90,
			Description: "Seared beef fillet wrapped in mushroom duxelles and puff pastry.",
			Ingredients: []string{"800g beef fillet", "500g chestnut mushrooms", "8 slices prosciutto", "500g puff pastry", "2 egg yolks", "english mustard"},
			Steps: []models.Step{
				models.Plain("Sear the fillet on all sides and brush with mustard."),
				models.Composite("Make the duxelles",
					models.Plain("Blitz the mushrooms to a fine paste."),
					models.Composite("Cook down the paste",
						models.Plain("Fry over high heat until all moisture evaporates."),
						models.Plain("Spread on a tray to cool."),
					),
				),
				models.Composite("Wrap the fillet",
					models.Plain("Lay prosciutto on cling film and spread the duxelles over it."),
					models.Plain("Roll the fillet tightly and chill for 20 minutes."),
					models.Plain("Encase in pastry and brush with egg yolk."),
				),
				models.Plain("Bake at 200°C for 35 minutes and rest before slicing."),
			},
		},
		{
			ID:          4,
			Title:       "Chicken Curry",
			Difficulty:  models.DifficultyMedium,
			Time:        40,
			Description: "A fragrant, mild curry simmered with tomatoes and spices.",
			Ingredients: []string{"600g chicken thighs", "2 onions", "3 garlic cloves", "thumb of ginger", "2 tbsp curry powder", "400g chopped tomatoes", "coconut milk"},
			Steps: []models.Step{
				models.Plain("Soften the onions in oil."),
				models.Composite("Build the base",
					models.Plain("Add garlic and ginger and cook for a minute."),
					models.Plain("Stir in the curry powder."),
				),
				models.Plain("Brown the chicken, then add tomatoes and coconut milk."),
				models.Plain("Simmer for 25 minutes until the chicken is tender."),
			},
		},
		{
			ID:          5,
			Title:       "Pancakes",
			Difficulty:  models.DifficultyEasy,
			Time:        20,
			Description: "Fluffy breakfast pancakes.",
			Ingredients: []string{"200g flour", "2 eggs", "300ml milk", "1 tbsp sugar", "1 tsp baking powder", "butter"},
			Steps: []models.Step{
				models.Composite("Make the batter",
					models.Plain("Whisk the dry ingredients together."),
					models.Plain("Beat in the eggs and milk until smooth."),
				),
				models.Plain("Cook ladlefuls in a buttered pan until bubbles form, then flip."),
			},
		},
		{
			ID:          6,
			Title:       "Caesar Salad",
			Difficulty:  models.DifficultyEasy,
			Time:        15,
			Description: "Crisp romaine with croutons and a punchy anchovy dressing.",
			Ingredients: []string{"1 romaine lettuce", "2 slices bread", "4 anchovy fillets", "1 egg yolk", "parmesan", "lemon juice", "olive oil"},
			Steps: []models.Step{
				models.Plain("Toast cubes of bread in olive oil for croutons."),
				models.Composite("Make the dressing",
					models.Plain("Mash the anchovies with the egg yolk and lemon juice."),
					models.Plain("Slowly whisk in the oil."),
				),
				models.Plain("Toss the leaves with dressing, croutons and shaved parmesan."),
			},
		},
		{
			ID:          7,
			Title:       "Chocolate Souffle",
			Difficulty:  models.DifficultyHard,
			Time:        60,
			Description: "A light, towering dessert that waits for no one.",
			Ingredients: []string{"150g dark chocolate", "4 eggs", "50g caster sugar", "butter", "cocoa powder"},
			Steps: []models.Step{
				models.Plain("Butter the ramekins and dust with cocoa powder."),
				models.Plain("Melt the chocolate over a bain-marie."),
				models.Composite("Fold the base",
					models.Plain("Stir the yolks into the chocolate."),
					models.Composite("Whip the whites",
						models.Plain("Beat to soft peaks."),
						models.Plain("Add the sugar gradually until glossy."),
					),
					models.Plain("Fold the whites through in three additions."),
				),
				models.Plain("Bake at 190°C for 12 minutes and serve at once."),
			},
		},
		{
			ID:          8,
			Title:       "Vegetable Stir Fry",
			Difficulty:  models.DifficultyMedium,
			Time:        18,
			Description: "Quick, crunchy vegetables tossed in a soy and ginger glaze.",
			Ingredients: []string{"1 red pepper", "1 broccoli head", "2 carrots", "soy sauce", "ginger", "sesame oil", "spring onions"},
			Steps: []models.Step{
				models.Plain("Slice all the vegetables thinly."),
				models.Plain("Stir fry in a very hot wok with sesame oil."),
				models.Plain("Add soy sauce and ginger and toss to glaze."),
			},
		},
	}

	for i := range recipes {
		recipes[i].Slug = slug.Generate(recipes[i].Title)
	}
	return recipes
}
