package catalog

// Lesson is a single viewable unit of course content.
type Lesson struct {
	Title string `json:"title" yaml:"title"`
	Notes string `json:"notes" yaml:"notes"`
}

// QuizQuestion is one multiple-choice question. CorrectIndex points into Options.
type QuizQuestion struct {
	Question     string   `json:"question" yaml:"question"`
	Options      []string `json:"options" yaml:"options"`
	CorrectIndex int      `json:"correct" yaml:"correct"`
}

// Course couples immutable course content with the local user's mutable
// progress state. Content fields always come from the canonical catalog;
// Progress, Completed and QuizScore are the only fields carried over from a
// persisted snapshot on load.
type Course struct {
	ID            int            `json:"id" yaml:"id"`
	Title         string         `json:"title" yaml:"title"`
	Description   string         `json:"description" yaml:"description"`
	Lessons       []Lesson       `json:"lessons" yaml:"lessons"`
	Quizzes       []QuizQuestion `json:"quizzes" yaml:"quizzes"`
	PointsAwarded int            `json:"pointsAwarded" yaml:"points_awarded"`
	Badge         string         `json:"badge" yaml:"badge"`

	Progress  int  `json:"progress" yaml:"-"`
	Completed bool `json:"completed" yaml:"-"`
	QuizScore int  `json:"quizScore" yaml:"-"`
}

// Clone returns a deep copy of the course.
func (c Course) Clone() Course {
	out := c
	out.Lessons = make([]Lesson, len(c.Lessons))
	copy(out.Lessons, c.Lessons)
	out.Quizzes = make([]QuizQuestion, len(c.Quizzes))
	for i, q := range c.Quizzes {
		opts := make([]string, len(q.Options))
		copy(opts, q.Options)
		q.Options = opts
		out.Quizzes[i] = q
	}
	return out
}

// Clone returns a deep copy of a course list.
func Clone(courses []Course) []Course {
	out := make([]Course, len(courses))
	for i, c := range courses {
		out[i] = c.Clone()
	}
	return out
}

// FindByID returns a pointer into courses for the course with the given id.
func FindByID(courses []Course, id int) (*Course, bool) {
	for i := range courses {
		if courses[i].ID == id {
			return &courses[i], true
		}
	}
	return nil, false
}
