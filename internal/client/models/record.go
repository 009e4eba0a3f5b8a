package models

// Kind classifies a record collection.
type Kind string

const (
	KindApplication   Kind = "application"
	KindCommunityTask Kind = "community_task"
	KindProject       Kind = "project"
	KindCourse        Kind = "course"
)

// Fields is the descriptive part of a record: everything except the id.
type Fields interface {
	Kind() Kind
	Validate() error
}

// Record is one entry of a collection. ID is assigned by the owning store
// and never changes; Fields is replaced as a whole on update.
type Record[T Fields] struct {
	ID     int64 `json:"id"`
	Fields T     `json:"fields"`
}
