package restaurant

import (
	"fmt"
	"strings"
)

// Ingredient is one of the kinds of food a Meal can be made of.
type Ingredient uint8

const (
	Potato Ingredient = iota
	Garlic
	Bread
	Cucumber
	Shrimp
	Rice
	Ham
	Avocado
	Spice
	Tomato

	ingredientsCount = int(Tomato) + 1
)

// Ingredients returns every Ingredient in declaration order.
func Ingredients() []Ingredient {
	all := make([]Ingredient, ingredientsCount)
	for i := range all {
		all[i] = Ingredient(i)
	}

	return all
}

func (i Ingredient) String() string {
	switch i {
	case Potato:
		return "Potato"
	case Garlic:
		return "Garlic"
	case Bread:
		return "Bread"
	case Cucumber:
		return "Cucumber"
	case Shrimp:
		return "Shrimp"
	case Rice:
		return "Rice"
	case Ham:
		return "Ham"
	case Avocado:
		return "Avocado"
	case Spice:
		return "Spice"
	case Tomato:
		return "Tomato"
	}

	return fmt.Sprintf("Ingredient(%d)", uint8(i))
}

// MealSize is number of ingredients in every Meal.
const MealSize = 3

// Meal is an order placed by Customer. Meal is passed by value between
// roles and is never modified after Customer created it.
type Meal struct {
	Ingredients [MealSize]Ingredient
	Customer    *Customer
}

func (m Meal) String() string {
	names := make([]string, len(m.Ingredients))
	for i, ingredient := range m.Ingredients {
		names[i] = ingredient.String()
	}

	return "[" + strings.Join(names, ", ") + "]"
}

// customerID returns ID of Customer who ordered this meal.
func (m Meal) customerID() uint64 {
	if m.Customer == nil {
		return 0
	}

	return m.Customer.ID
}
