package console

// Kind selects the payload field of a Result.
type Kind int

const (
	KindSequence Kind = iota
	KindSet
	KindBool
	KindText
	KindBytes
	KindMapping
)

// Result is the value a command hands back for rendering. It is a
// tagged union: exactly one payload field is meaningful, selected by
// Kind. The console passes it through untouched; interpretation is the
// renderer's job.
type Result struct {
	Kind    Kind
	Seq     []string
	Members []string
	Bool    bool
	Text    string
	Bytes   []byte
	Mapping map[string]string
}

func Sequence(items []string) Result {
	return Result{Kind: KindSequence, Seq: items}
}

// Set carries a membership collection; element order is not significant.
func Set(members []string) Result {
	return Result{Kind: KindSet, Members: members}
}

func Bool(v bool) Result {
	return Result{Kind: KindBool, Bool: v}
}

func Text(s string) Result {
	return Result{Kind: KindText, Text: s}
}

func Bytes(b []byte) Result {
	return Result{Kind: KindBytes, Bytes: b}
}

func Mapping(m map[string]string) Result {
	return Result{Kind: KindMapping, Mapping: m}
}

// TypeName reports the display name shown next to a rendered result.
func (r Result) TypeName() string {
	switch r.Kind {
	case KindSequence:
		return "sequence"
	case KindSet:
		return "set"
	case KindBool:
		return "bool"
	case KindText:
		return "text"
	case KindBytes:
		return "bytes"
	case KindMapping:
		return "mapping"
	default:
		return "unknown"
	}
}
