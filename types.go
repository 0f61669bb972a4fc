package confmerge

// KeyMode controls how keys without a definition are handled.
type KeyMode int

const (
	KeyFlexible KeyMode = iota // Infer a definition for unknown keys.
	KeyStrict                  // Reject unknown keys and report missing ones.
)

func (m KeyMode) valid() bool { return m == KeyFlexible || m == KeyStrict }

func (m KeyMode) String() string {
	switch m {
	case KeyFlexible:
		return "flexible"
	case KeyStrict:
		return "strict"
	default:
		return "invalid"
	}
}

// TypeMode controls how leaf values with an unexpected runtime type are handled.
type TypeMode int

const (
	TypeCast   TypeMode = iota // Coerce leaf values to the declared kind.
	TypeStrict                 // Reject values whose runtime kind differs.
)

func (m TypeMode) valid() bool { return m == TypeCast || m == TypeStrict }

func (m TypeMode) String() string {
	switch m {
	case TypeCast:
		return "cast"
	case TypeStrict:
		return "strict"
	default:
		return "invalid"
	}
}
