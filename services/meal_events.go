package services

const EventMealCreated = "meal.created"

// MealEvent is what subscribers of /ws/meals receive.
type MealEvent struct {
	Kind string       `json:"kind"`
	Meal MealResponse `json:"meal"`
}

// MealNotifier is told about meals as they are created.
type MealNotifier interface {
	Broadcast(userID uint, payload any)
}

func emitMealCreated(n MealNotifier, userID uint, meal MealResponse) {
	if n == nil {
		return
	}
	n.Broadcast(userID, MealEvent{Kind: EventMealCreated, Meal: meal})
}
