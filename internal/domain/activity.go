package domain

// Activity categories
const (
	CategoryGame  = "game"
	CategoryVideo = "video"
)

// EarningActivity is a task the user completes to earn a fixed coin reward
type EarningActivity struct {
	ID       string `json:"id"`       // Catalog identifier
	Title    string `json:"title"`    // Display title
	Reward   int64  `json:"reward"`   // Coins credited on completion
	Category string `json:"category"` // game or video
	Duration string `json:"duration"` // Human readable duration
	Premium  bool   `json:"premium"`  // Featured premium task
}

// Description of the earning transaction this activity produces.
func (a EarningActivity) Description() string {
	return "Completed: " + a.Title
}

var activities = []EarningActivity{
	{ID: "1", Title: "Space Shooter", Reward: 50, Category: CategoryGame, Duration: "5 min"},
	{ID: "2", Title: "Watch Ad", Reward: 15, Category: CategoryVideo, Duration: "30 sec"},
	{ID: "3", Title: "Daily Puzzle", Reward: 100, Category: CategoryGame, Duration: "2 min"},
	{ID: "4", Title: "Survey", Reward: 250, Category: CategoryVideo, Duration: "10 min"},
	{ID: "dragon-quest", Title: "Install & Play: Dragon Quest", Reward: 5000, Category: CategoryGame, Duration: "Reach Level 10", Premium: true},
}

// Activities returns a copy of the activity catalog
func Activities() []EarningActivity {
	out := make([]EarningActivity, len(activities))
	copy(out, activities)
	return out
}

// FindActivity looks an activity up by id
func FindActivity(id string) (EarningActivity, bool) {
	for _, a := range activities {
		if a.ID == id {
			return a, true
		}
	}
	return EarningActivity{}, false
}
