package models

// Course is a school course with its exam dates.
type Course struct {
	CourseName  string `json:"courseName"`
	Instructor  string `json:"instructor"`
	Resource    string `json:"resource"`
	Description string `json:"description"`
	MidtermDate string `json:"midtermDate"`
	FinalDate   string `json:"finalDate"`
}

func (c Course) Kind() Kind { return KindCourse }

func (c Course) Validate() error {
	return requireFields(
		field{"course name", c.CourseName},
		field{"instructor", c.Instructor},
		field{"resource", c.Resource},
		field{"midterm date", c.MidtermDate},
		field{"final date", c.FinalDate},
	)
}
