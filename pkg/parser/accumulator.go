package parser

// ListKind is the kind of a list run
type ListKind int

const (
	Unordered ListKind = iota
	Ordered
)

func (k ListKind) String() string {
	if k == Ordered {
		return "ordered"
	}
	return "unordered"
}

// accState is the state of the list accumulator
type accState int

const (
	noOpenList accState = iota
	openList
)

// accumulator collects list items until the run ends.
//
//	noOpenList --push(k)--> openList(k)
//	openList(k) --push(k)--> openList(k)            (item appended)
//	openList(k) --push(j)--> openList(j)            (k flushed, j != k)
//	openList(k) --flush--> noOpenList               (k flushed)
//	noOpenList --flush--> noOpenList                (nothing flushed)
type accumulator struct {
	state accState
	kind  ListKind
	items []string
}

// push adds an item of kind k. If a list of another kind was open, it is
// closed and returned.
func (a *accumulator) push(k ListKind, item string) *List {
	var flushed *List
	if a.state == openList && a.kind != k {
		flushed = a.flush()
	}
	if a.state == noOpenList {
		a.state = openList
		a.kind = k
		a.items = []string{item}
		return flushed
	}
	a.items = append(a.items, item)
	return flushed
}

// flush closes the open list and returns it, or nil if none was open.
func (a *accumulator) flush() *List {
	if a.state == noOpenList {
		return nil
	}
	list := &List{Ordered: a.kind == Ordered, Items: a.items}
	a.state = noOpenList
	a.items = nil
	return list
}
