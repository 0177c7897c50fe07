package queue

// HeaderTask asks a worker to compose header.png for one subject folder.
// A zero Seed means a fresh random panel order.
type HeaderTask struct {
	Folder string `json:"folder"`
	Seed   int64  `json:"seed,omitempty"`
}
