package catalog

// Defaults returns the built-in canonical catalog. Each call builds a fresh
// copy, so callers may mutate the result freely.
func Defaults() []Course {
	return []Course{
		{
			ID:          1,
			Title:       "Introduction to JavaScript",
			Description: "Learn JavaScript fundamentals, the DOM, and how to build interactive pages.",
			Lessons: []Lesson{
				{Title: "What is JavaScript?", Notes: "JavaScript is a scripting language that runs in the browser. It allows you to change page content, respond to user actions, and communicate with servers."},
				{Title: "Variables & Data Types", Notes: "Use let/const to declare variables. Common types: string, number, boolean, null, undefined, object, array."},
				{Title: "Functions & Scope", Notes: "Functions encapsulate behavior. Understand local vs global scope and closures."},
				{Title: "DOM Basics", Notes: "Document Object Model (DOM) represents the HTML structure. Use document.querySelector and element.addEventListener to interact with the page."},
			},
			Quizzes: []QuizQuestion{
				{Question: "Which keyword declares a block-scoped variable?", Options: []string{"var", "let", "function"}, CorrectIndex: 1},
				{Question: "What will console.log(typeof []) print?", Options: []string{"array", "object", "list"}, CorrectIndex: 1},
			},
			PointsAwarded: 120,
			Badge:         "JS Starter",
		},
		{
			ID:          2,
			Title:       "Modern CSS Techniques",
			Description: "Layouts, Flexbox, Grid, responsive units and animations for modern UI.",
			Lessons: []Lesson{
				{Title: "Box Model & Units", Notes: "Understand content, padding, border, margin. Use rem/em for scalable layouts."},
				{Title: "Flexbox Essentials", Notes: "Flexbox helps distribute space in one-dimensional layouts (rows/columns). key properties: display:flex, justify-content, align-items."},
				{Title: "Grid Layout", Notes: "CSS Grid enables two-dimensional layouts with grid-template-columns/rows and grid areas."},
				{Title: "Transitions & Animations", Notes: "Use transition for simple effects and @keyframes for complex animations."},
			},
			Quizzes: []QuizQuestion{
				{Question: "Which property centers flex items horizontally?", Options: []string{"align-items", "justify-content", "flex-direction"}, CorrectIndex: 1},
				{Question: "Which unit is relative to the root font-size?", Options: []string{"em", "rem", "px"}, CorrectIndex: 1},
			},
			PointsAwarded: 150,
			Badge:         "CSS Designer",
		},
		{
			ID:          3,
			Title:       "HTML5 Essentials",
			Description: "Semantic HTML, forms, accessibility, and multimedia elements.",
			Lessons: []Lesson{
				{Title: "Semantic Elements", Notes: "Use header, nav, main, article, section, footer for meaning and accessibility."},
				{Title: "Forms & Validation", Notes: "Use input types, labels, and built-in validation attributes like required and pattern."},
				{Title: "Media Elements", Notes: "Use <video> and <audio> with controls attribute; provide captions for accessibility."},
			},
			Quizzes: []QuizQuestion{
				{Question: "Which element is used for the main site content?", Options: []string{"<main>", "<section>", "<div>"}, CorrectIndex: 0},
				{Question: "Which attribute makes an input required?", Options: []string{"required", "validate", "mandatory"}, CorrectIndex: 0},
			},
			PointsAwarded: 100,
			Badge:         "HTML Pro",
		},
		{
			ID:          4,
			Title:       "Python Basics",
			Description: "Intro to Python syntax, data structures, and simple scripting.",
			Lessons: []Lesson{
				{Title: "Python Syntax & Variables", Notes: "Python uses indentation. Variables are dynamically typed."},
				{Title: "Lists & Dictionaries", Notes: "Lists are ordered collections; dictionaries are key-value stores."},
				{Title: "Control Flow", Notes: "if/elif/else and loops (for, while) control execution flow."},
			},
			Quizzes: []QuizQuestion{
				{Question: "Which symbol starts a comment in Python?", Options: []string{"//", "#", "/*"}, CorrectIndex: 1},
				{Question: "Which data structure maps keys to values?", Options: []string{"list", "tuple", "dictionary"}, CorrectIndex: 2},
			},
			PointsAwarded: 140,
			Badge:         "Python Novice",
		},
		{
			ID:          5,
			Title:       "Git & GitHub Fundamentals",
			Description: "Version control with Git, branching, commits and collaborating on GitHub.",
			Lessons: []Lesson{
				{Title: "What is Git?", Notes: "Git is a distributed version control system. Track history and collaborate safely."},
				{Title: "Common Commands", Notes: "git init, git add, git commit, git push, git pull, git branch, git merge."},
				{Title: "Working with GitHub", Notes: "Create repositories, open pull requests, and use issues to track work."},
			},
			Quizzes: []QuizQuestion{
				{Question: "Which command stages changes for commit?", Options: []string{"git commit", "git add", "git push"}, CorrectIndex: 1},
				{Question: "Where do you open a pull request?", Options: []string{"Local repo", "GitHub UI", "Terminal only"}, CorrectIndex: 1},
			},
			PointsAwarded: 130,
			Badge:         "Version Control",
		},
	}
}
