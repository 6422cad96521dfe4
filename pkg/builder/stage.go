package builder

type Stage int

const (
	Pull Stage = iota
	Run
)

func (s Stage) String() string {
	return [...]string{"pull", "run"}[s]
}
