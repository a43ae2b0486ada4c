package restaurant_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/ixilminiussi/multithreading-learning/restaurant"
)

func Test_Ingredient_String(t *testing.T) {
	t.Parallel()

	expected := []string{
		"Potato", "Garlic", "Bread", "Cucumber", "Shrimp",
		"Rice", "Ham", "Avocado", "Spice", "Tomato",
	}

	all := Ingredients()
	assert.Len(t, all, len(expected))

	for i, ingredient := range all {
		assert.Equal(t, expected[i], ingredient.String())
	}

	// unknown value never renders as valid ingredient
	assert.Equal(t, "Ingredient(42)", Ingredient(42).String())
}

func Test_Meal_String(t *testing.T) {
	t.Parallel()

	m := Meal{Ingredients: [MealSize]Ingredient{Ham, Rice, Spice}}
	assert.Equal(t, "[Ham, Rice, Spice]", m.String())
}

func Test_WaiterState_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "FREE", WaiterFree.String())
	assert.Equal(t, "CALLED", WaiterCalled.String())
	assert.Equal(t, "TO_KITCHEN", WaiterToKitchen.String())
	assert.Equal(t, "TO_CLIENT", WaiterToClient.String())
	assert.Equal(t, "WaiterState(9)", WaiterState(9).String())
}

func Test_Stage_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ordered", StageOrdered.String())
	assert.Equal(t, "handed over", StageHandedOver.String())
	assert.Equal(t, "exited", StageExited.String())
	assert.Equal(t, "Stage(0)", Stage(0).String())
}

func Test_PickIngredients(t *testing.T) {
	t.Parallel()

	r := newTestRestaurant(t, OptSeed(7))

	for range 1000 {
		picked := r.PickIngredients()
		assert.NotEqual(t, picked[0], picked[1])
		assert.NotEqual(t, picked[0], picked[2])
		assert.NotEqual(t, picked[1], picked[2])

		for _, ingredient := range picked {
			assert.Less(t, int(ingredient), len(Ingredients()))
		}
	}

	// same seed gives same meals
	a, b := newTestRestaurant(t, OptSeed(42)), newTestRestaurant(t, OptSeed(42))
	for range 10 {
		assert.Equal(t, a.PickIngredients(), b.PickIngredients())
	}
}
