package protocols

type IdentifierGenerator interface {
	Generate() string
}
