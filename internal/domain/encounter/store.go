package encounter

import "github.com/carebridge/hms/internal/platform/console"

type OPDStore struct {
	*console.Store[*OPDVisit]
	seq *console.Sequence
}

func NewOPDStore() *OPDStore {
	seed := SeedOPD()
	return &OPDStore{
		Store: console.NewStore(console.Append, seed...),
		seq:   console.NewSequence("OPD%04d", len(seed)+1),
	}
}

func (s *OPDStore) NextID() string { return s.seq.Next() }

func (s *OPDStore) Search(term, department, status string) []*OPDVisit {
	return console.Filter(s.List(), term,
		[]console.TextField[*OPDVisit]{
			func(v *OPDVisit) string { return v.Patient },
			func(v *OPDVisit) string { return v.Doctor },
		},
		[]console.Categorical[*OPDVisit]{
			{Value: department, Get: func(v *OPDVisit) string { return v.Department }},
			{Value: status, Get: func(v *OPDVisit) string { return v.Status }},
		})
}

type IPDStore struct {
	*console.Store[*IPDAdmission]
	seq *console.Sequence
}

func NewIPDStore() *IPDStore {
	seed := SeedIPD()
	return &IPDStore{
		Store: console.NewStore(console.Append, seed...),
		seq:   console.NewSequence("IPD%04d", len(seed)+1),
	}
}

func (s *IPDStore) NextID() string { return s.seq.Next() }

func (s *IPDStore) Search(term, ward, status string) []*IPDAdmission {
	return console.Filter(s.List(), term,
		[]console.TextField[*IPDAdmission]{
			func(a *IPDAdmission) string { return a.Patient },
			func(a *IPDAdmission) string { return a.BedNumber },
		},
		[]console.Categorical[*IPDAdmission]{
			{Value: ward, Get: func(a *IPDAdmission) string { return a.Ward }},
			{Value: status, Get: func(a *IPDAdmission) string { return a.Status }},
		})
}
