package types

// Suggestion panel actions
type MoveSuggestionAction struct {
	Delta int // +1 down, -1 up
}

func (a MoveSuggestionAction) Type() string { return "move_suggestion" }

type CommitSuggestionAction struct{}

func (a CommitSuggestionAction) Type() string { return "commit_suggestion" }

// SelectSuggestionAction is a pointer activation of a visible suggestion
type SelectSuggestionAction struct {
	Index int
}

func (a SelectSuggestionAction) Type() string { return "select_suggestion" }

type DismissSuggestionsAction struct{}

func (a DismissSuggestionsAction) Type() string { return "dismiss_suggestions" }

// Form actions
type FocusAction struct {
	Field    Field
	Relative int // when non-zero, move relative to the focused field instead
}

func (a FocusAction) Type() string { return "focus" }

type CycleSlotAction struct {
	Step int
}

func (a CycleSlotAction) Type() string { return "cycle_slot" }

type SubmitFormAction struct{}

func (a SubmitFormAction) Type() string { return "submit_form" }

// Booking look-up actions
type LookupBookingAction struct{}

func (a LookupBookingAction) Type() string { return "lookup_booking" }

type CancelBookingAction struct{}

func (a CancelBookingAction) Type() string { return "cancel_booking" }

type ReloadMunicipalitiesAction struct{}

func (a ReloadMunicipalitiesAction) Type() string { return "reload_municipalities" }

type QuitAction struct{}

func (a QuitAction) Type() string { return "quit" }
