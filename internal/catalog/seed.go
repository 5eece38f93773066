package catalog

import "github.com/mesh-intelligence/recipebox/pkg/types"

// seedRecipes is the built-in example set used when the slot holds nothing
// usable and after a reset. Ids are assigned when the set is installed.
var seedRecipes = []types.Recipe{
	{
		Title:    "Classic Pancakes",
		Tags:     []string{"breakfast", "easy"},
		Servings: 4,
		Time:     "20 min",
		Ingredients: []string{
			"1 1/2 cups all-purpose flour",
			"3 1/2 tsp baking powder",
			"1 tsp salt",
			"1 tbsp sugar",
			"1 1/4 cups milk",
			"1 egg",
			"3 tbsp melted butter",
		},
		Steps: []string{
			"Whisk dry ingredients.",
			"Add milk, egg and melted butter, then stir until just combined.",
			"Heat a skillet and cook 2-3 minutes per side until golden.",
		},
		Favorite: false,
	},
	{
		Title:    "Simple Tomato Pasta",
		Tags:     []string{"dinner", "vegetarian"},
		Servings: 2,
		Time:     "25 min",
		Ingredients: []string{
			"200g pasta",
			"2 cups chopped tomatoes",
			"2 cloves garlic",
			"olive oil",
			"salt & pepper",
			"basil",
		},
		Steps: []string{
			"Cook pasta according to package.",
			"Sauté garlic in olive oil, add tomatoes and simmer.",
			"Toss pasta with sauce and garnish with basil.",
		},
		Favorite: true,
	},
}

// seedSet returns fresh copies of the seed recipes with ids from newID.
func seedSet(newID func() string) []types.Recipe {
	out := make([]types.Recipe, len(seedRecipes))
	for i, r := range seedRecipes {
		out[i] = r.Clone()
		out[i].ID = newID()
	}
	return out
}
