package i18n

// EnMessages English message catalog
var EnMessages = map[string]string{
	// Main menu
	"app.title":        "MathDesk",
	"menu.planner":     "Schedule Planner",
	"menu.library":     "Book Library",
	"menu.mathtool":    "Math Helper",
	"menu.games":       "Math Games",
	"menu.hint":        "↑/↓ select · enter open · q quit",
	"menu.desc.planner":  "Plan your day and find free time",
	"menu.desc.library":  "Track books, notes and highlights",
	"menu.desc.mathtool": "Practice problems and a step-by-step solver",
	"menu.desc.games":    "Timed quiz games with high scores",

	// Planner
	"planner.title":          "Schedule Planner",
	"planner.no_events":      "No events on this day",
	"planner.free_slots":     "Free time slots",
	"planner.no_free_slots":  "No free slots left today",
	"planner.confirm_delete": "Delete %q? (y/n)",
	"planner.export_done":    "Exported calendar to %s",
	"planner.form.title":     "Title",
	"planner.form.date":      "Date",
	"planner.form.start":     "Start",
	"planner.form.end":       "End",
	"planner.form.category":  "Category",
	"planner.form.recurring": "Repeat",
	"planner.form.reminder":  "Reminder",
	"planner.form.notes":     "Notes",

	"category.class":    "Class",
	"category.meeting":  "Meeting",
	"category.personal": "Personal",

	"recur.none":    "None",
	"recur.daily":   "Daily",
	"recur.weekly":  "Weekly",
	"recur.monthly": "Monthly",

	// Library
	"library.title":          "Book Library",
	"library.search":         "Search title, author or tag...",
	"library.empty":          "No books match",
	"library.confirm_delete": "Remove %q from the library? (y/n)",
	"library.notes":          "Notes",
	"library.highlights":     "Highlights",
	"library.form.title":     "Title",
	"library.form.author":    "Author",
	"library.form.isbn":      "ISBN",
	"library.form.category":  "Category",
	"library.form.tags":      "Tags (comma separated)",
	"library.form.cover":     "Cover URL",
	"library.form.note":      "Add note",
	"library.form.highlight": "Add highlight",
	"library.added":          "Added %s",

	// Math helper
	"mathtool.title":         "Math Helper",
	"mathtool.tab.practice":  "Practice",
	"mathtool.tab.solver":    "Solver",
	"mathtool.tab.worksheet": "Worksheet",
	"mathtool.prompt":        "Enter an equation, e.g. 25 + 37",
	"mathtool.solution":      "Solution",
	"mathtool.steps":         "Steps",
	"mathtool.topic":         "Topic",
	"mathtool.difficulty":    "Difficulty",

	"topic.arithmetic": "Arithmetic",
	"topic.algebra":    "Algebra",
	"topic.geometry":   "Geometry",
	"topic.calculus":   "Calculus",
	"topic.statistics": "Statistics",

	"difficulty.easy":   "Easy",
	"difficulty.medium": "Medium",
	"difficulty.hard":   "Hard",

	// Games
	"games.title":       "Math Games",
	"games.high_score":  "High score: %d",
	"games.score":       "Score: %d",
	"games.time":        "Time: %ds",
	"games.question":    "Question %d of %d",
	"games.correct":     "Correct!",
	"games.wrong":       "Wrong, the answer was %v",
	"games.results":     "Round over",
	"games.final_score": "Final score: %d",
	"games.accuracy":    "Accuracy: %.0f%%",
	"games.new_record":  "New high score!",
	"games.play_again":  "enter play again · esc back",

	"game.arithmetic":     "Quick Arithmetic",
	"game.fractions":      "Fraction Frenzy",
	"game.decimals":       "Decimal Dash",
	"game.multiplication": "Times Tables",

	// Status and errors
	"status.saved": "Saved",
	"error.save":   "Save failed: %v",
	"error.load":   "Load failed: %v",

	// Key hints
	"keys.back":   "esc back",
	"keys.quit":   "q quit",
	"keys.select": "enter select",
	"keys.new":    "n new",
	"keys.edit":   "e edit",
	"keys.delete": "d delete",
	"keys.export": "x export",
	"keys.free":   "f free time",
}
