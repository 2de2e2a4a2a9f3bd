package common

type Module string

const (
	ModuleAuction Module = "auction"
)

func (m Module) String() string {
	return string(m)
}
