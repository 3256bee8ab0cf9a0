package service

import "github.com/Mrguru2024/IncomeIntelligence-sub004/internal/models"

// ChallengeTemplate is the static catalog entry a concrete challenge is
// generated from. Durations are in days.
type ChallengeTemplate struct {
	Type            models.ChallengeType
	Name            string
	Description     string
	Difficulty      models.ChallengeDifficulty
	DefaultDuration int
	MinDuration     int
	MaxDuration     int
}

var challengeTemplates = []ChallengeTemplate{
	{
		Type:            models.ChallengeDaily,
		Name:            "Daily Saver",
		Description:     "Put away a small fixed amount every single day.",
		Difficulty:      models.DifficultyEasy,
		DefaultDuration: 30,
		MinDuration:     7,
		MaxDuration:     90,
	},
	{
		Type:            models.ChallengeWeekly,
		Name:            "Weekly Stash",
		Description:     "Set aside one deposit at the start of each week.",
		Difficulty:      models.DifficultyEasy,
		DefaultDuration: 28,
		MinDuration:     14,
		MaxDuration:     84,
	},
	{
		Type:            models.ChallengeMonthly,
		Name:            "Monthly Milestone",
		Description:     "Boost your savings rate with one big monthly transfer.",
		Difficulty:      models.DifficultyMedium,
		DefaultDuration: 30,
		MinDuration:     30,
		MaxDuration:     90,
	},
	{
		Type:            models.ChallengeRoundUp,
		Name:            "Round-Up Rally",
		Description:     "Round every purchase up to the next dollar and bank the change.",
		Difficulty:      models.DifficultyEasy,
		DefaultDuration: 14,
		MinDuration:     7,
		MaxDuration:     30,
	},
	{
		Type:            models.ChallengeNoSpend,
		Name:            "No-Spend Reset",
		Description:     "Cut discretionary spending to zero and save what you would have spent.",
		Difficulty:      models.DifficultyHard,
		DefaultDuration: 7,
		MinDuration:     3,
		MaxDuration:     30,
	},
	{
		Type:            models.ChallengeSavingSprint,
		Name:            "Savings Sprint",
		Description:     "A short, aggressive push to bank a slice of your income fast.",
		Difficulty:      models.DifficultyHard,
		DefaultDuration: 14,
		MinDuration:     7,
		MaxDuration:     30,
	},
	{
		Type:            models.ChallengeIncremental,
		Name:            "Step-Up Saver",
		Description:     "Start small and raise the bar a little every week.",
		Difficulty:      models.DifficultyMedium,
		DefaultDuration: 28,
		MinDuration:     14,
		MaxDuration:     56,
	},
	{
		Type:            models.ChallengeDeclutter,
		Name:            "Declutter & Cash In",
		Description:     "Sell two unused items a week and save the proceeds.",
		Difficulty:      models.DifficultyMedium,
		DefaultDuration: 14,
		MinDuration:     7,
		MaxDuration:     28,
	},
	{
		Type:            models.ChallengeHabitSwap,
		Name:            "Habit Swap",
		Description:     "Swap one paid habit for a free one and save the difference daily.",
		Difficulty:      models.DifficultyEasy,
		DefaultDuration: 21,
		MinDuration:     7,
		MaxDuration:     60,
	},
	{
		Type:            models.ChallengeAutomation,
		Name:            "Automation Station",
		Description:     "Set up an automatic transfer and let it run for the month.",
		Difficulty:      models.DifficultyMedium,
		DefaultDuration: 30,
		MinDuration:     30,
		MaxDuration:     90,
	},
}

var challengeThemes = []models.ChallengeTheme{
	{Name: "sunset", Colors: [3]string{"#FF6B6B", "#FF8E53", "#FFD166"}},
	{Name: "ocean", Colors: [3]string{"#0077B6", "#00B4D8", "#90E0EF"}},
	{Name: "forest", Colors: [3]string{"#2D6A4F", "#40916C", "#95D5B2"}},
	{Name: "lavender", Colors: [3]string{"#7209B7", "#B5179E", "#F72585"}},
	{Name: "midnight", Colors: [3]string{"#0D1B2A", "#1B263B", "#415A77"}},
	{Name: "citrus", Colors: [3]string{"#F77F00", "#FCBF49", "#EAE2B7"}},
	{Name: "rose", Colors: [3]string{"#D90429", "#EF233C", "#EDF2F4"}},
	{Name: "mint", Colors: [3]string{"#006D77", "#83C5BE", "#EDF6F9"}},
}

var commonTips = []string{
	"Move the money as soon as you decide to save it, before it can be spent.",
	"Keep challenge savings in a separate account you never carry a card for.",
	"Check in daily; a thirty-second review keeps the streak alive.",
	"Tell a friend about the challenge so someone else knows the goal.",
	"Celebrate milestones with something free, not a purchase.",
	"If you miss a day, restart immediately instead of writing off the week.",
}

var typeTips = map[models.ChallengeType][]string{
	models.ChallengeDaily: {
		"Save the amount first thing in the morning with your coffee.",
		"Set a recurring phone reminder for the same time every day.",
		"Skip one small purchase a day and transfer exactly that amount.",
		"Round your daily amount up on payday for a cushion.",
		"Pair the transfer with an existing habit so you never forget.",
	},
	models.ChallengeWeekly: {
		"Schedule the transfer for the morning your pay lands.",
		"Treat the weekly deposit like rent: non-negotiable.",
		"Review last week's spending before each deposit.",
		"Put windfalls straight into the weekly pot.",
		"Plan the week's meals before the deposit so groceries don't eat it.",
	},
	models.ChallengeMonthly: {
		"Automate the transfer for the first of the month.",
		"Base the amount on your lowest-earning recent month, not the best one.",
		"Move the money before paying any discretionary bills.",
		"Revisit subscriptions each month and add the savings to the pot.",
		"Track gig income weekly so the monthly target never surprises you.",
	},
	models.ChallengeRoundUp: {
		"Use a notes app to log round-ups the moment you pay.",
		"Round up to the next five dollars on bigger purchases.",
		"Sweep the accumulated change into savings every Friday.",
		"Count cash purchases too, not just card payments.",
		"Double the round-up on days you were going to spend anyway.",
	},
	models.ChallengeNoSpend: {
		"Remove saved cards from your browser before you start.",
		"Plan free activities for the evenings you usually shop.",
		"Unsubscribe from marketing emails for the duration.",
		"Prep meals ahead so delivery apps have no opening.",
		"Log every urge to spend; watching the total fall is motivating.",
	},
	models.ChallengeSavingSprint: {
		"Pick up one extra gig shift and bank the entire payout.",
		"Pause every subscription you can for the sprint window.",
		"Sell something small on day one for instant momentum.",
		"Set a daily minimum so no day ends at zero.",
		"Keep the sprint short and intense; don't extend it mid-run.",
	},
	models.ChallengeIncremental: {
		"Start below what feels easy; the later weeks get steep.",
		"Mark each week's new amount on a visible calendar.",
		"Bank the increase the same day each week.",
		"If a week fails, repeat it rather than skipping ahead.",
		"Use the final week's amount as your new baseline afterwards.",
	},
	models.ChallengeDeclutter: {
		"Photograph and list items the same day you find them.",
		"Price to sell; a fast small sale beats a slow big one.",
		"Work one room at a time to keep momentum.",
		"Put every sale's proceeds into savings before the day ends.",
		"Bundle low-value items so nothing lingers unsold.",
	},
	models.ChallengeHabitSwap: {
		"Write down the habit you're swapping and its daily cost.",
		"Prepare the free replacement the night before.",
		"Transfer the skipped cost immediately, not at week's end.",
		"Keep the swap visible: a sticky note on your wallet works.",
		"After the challenge, keep the swap twice a week.",
	},
	models.ChallengeAutomation: {
		"Schedule the transfer for the day after your usual payout.",
		"Start at an amount you won't be tempted to cancel.",
		"Name the destination account after the goal.",
		"Check the transfer fired in week one, then leave it alone.",
		"Raise the amount by a few dollars each month it survives.",
	},
}

// streakBonuses maps a streak length to the bonus points awarded the moment
// the streak reaches it.
var streakBonuses = map[int]int{
	3:  10,
	7:  25,
	14: 50,
	30: 100,
	60: 200,
	90: 500,
}

// streakBonusThresholds in ascending order, for deterministic iteration.
var streakBonusThresholds = []int{3, 7, 14, 30, 60, 90}

func templateFor(challengeType models.ChallengeType) (ChallengeTemplate, bool) {
	for _, tpl := range challengeTemplates {
		if tpl.Type == challengeType {
			return tpl, true
		}
	}
	return ChallengeTemplate{}, false
}

func themeByName(name string) (models.ChallengeTheme, bool) {
	for _, theme := range challengeThemes {
		if theme.Name == name {
			return theme, true
		}
	}
	return models.ChallengeTheme{}, false
}
