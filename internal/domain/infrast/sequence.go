package infrast

// SegmentKind names a block of a compiled sequence
type SegmentKind string

const (
	SegmentSpecialPre  SegmentKind = "special_pre"
	SegmentLeadIn      SegmentKind = "lead_in"
	SegmentFacility    SegmentKind = "facility"
	SegmentSpecialPost SegmentKind = "special_post"
)

// Segment is a run of units that belong together
type Segment struct {
	Kind  SegmentKind
	Units []*Unit
}

// Sequence is the ordered list of units handed to the scheduler. It is built
// from segments concatenated in a fixed order (special_pre, lead_in,
// facility blocks, special_post) and never spliced by index.
type Sequence struct {
	specialPre  *Segment
	leadIn      Segment
	facilities  []Segment
	specialPost *Segment
}

// MinimalSequence is the safe fallback: a single anchor
func MinimalSequence(anchor *Unit) *Sequence {
	return &Sequence{
		leadIn: Segment{Kind: SegmentLeadIn, Units: []*Unit{anchor}},
	}
}

// NewQuickSequence builds [anchor, info, (unit, anchor)...]
func NewQuickSequence(anchor, info *Unit, units []*Unit) *Sequence {
	s := &Sequence{
		leadIn:     Segment{Kind: SegmentLeadIn, Units: []*Unit{anchor, info}},
		facilities: make([]Segment, 0, len(units)),
	}
	for _, u := range units {
		s.facilities = append(s.facilities, Segment{
			Kind:  SegmentFacility,
			Units: []*Unit{u, anchor},
		})
	}
	return s
}

// WithSpecialPre returns a copy with [anchor, special] ahead of everything else
func (s *Sequence) WithSpecialPre(anchor, special *Unit) *Sequence {
	out := s.clone()
	out.specialPre = &Segment{Kind: SegmentSpecialPre, Units: []*Unit{anchor, special}}
	return out
}

// WithSpecialPost returns a copy with [special, anchor] after everything else
func (s *Sequence) WithSpecialPost(anchor, special *Unit) *Sequence {
	out := s.clone()
	out.specialPost = &Segment{Kind: SegmentSpecialPost, Units: []*Unit{special, anchor}}
	return out
}

// Segments returns the segments in execution order
func (s *Sequence) Segments() []Segment {
	segments := make([]Segment, 0, len(s.facilities)+3)
	if s.specialPre != nil {
		segments = append(segments, *s.specialPre)
	}
	segments = append(segments, s.leadIn)
	segments = append(segments, s.facilities...)
	if s.specialPost != nil {
		segments = append(segments, *s.specialPost)
	}
	return segments
}

// Units flattens the sequence
func (s *Sequence) Units() []*Unit {
	var units []*Unit
	for _, seg := range s.Segments() {
		units = append(units, seg.Units...)
	}
	return units
}

// Kinds flattens the sequence to unit kinds
func (s *Sequence) Kinds() []UnitKind {
	units := s.Units()
	kinds := make([]UnitKind, len(units))
	for i, u := range units {
		kinds[i] = u.Kind()
	}
	return kinds
}

func (s *Sequence) Len() int {
	n := 0
	for _, seg := range s.Segments() {
		n += len(seg.Units)
	}
	return n
}

func (s *Sequence) clone() *Sequence {
	out := &Sequence{
		leadIn:     s.leadIn,
		facilities: append([]Segment(nil), s.facilities...),
	}
	if s.specialPre != nil {
		seg := *s.specialPre
		out.specialPre = &seg
	}
	if s.specialPost != nil {
		seg := *s.specialPost
		out.specialPost = &seg
	}
	return out
}
