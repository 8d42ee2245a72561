package frontdesk

import "github.com/carebridge/hms/internal/platform/console"

type VisitorStore struct {
	*console.Store[*Visitor]
}

func NewVisitorStore() *VisitorStore {
	return &VisitorStore{Store: console.NewStore(console.Prepend, SeedVisitors()...)}
}

func (s *VisitorStore) Search(term, status string) []*Visitor {
	return console.Filter(s.List(), term,
		[]console.TextField[*Visitor]{
			func(v *Visitor) string { return v.Name },
			func(v *Visitor) string { return v.Visiting },
			func(v *Visitor) string { return v.Phone },
		},
		[]console.Categorical[*Visitor]{
			{Value: status, Get: func(v *Visitor) string { return v.Status }},
		})
}

type CallStore struct {
	*console.Store[*CallLog]
}

func NewCallStore() *CallStore {
	return &CallStore{Store: console.NewStore(console.Prepend, SeedCalls()...)}
}

func (s *CallStore) Search(term, callType, status string) []*CallLog {
	return console.Filter(s.List(), term,
		[]console.TextField[*CallLog]{
			func(l *CallLog) string { return l.Caller },
			func(l *CallLog) string { return l.Subject },
		},
		[]console.Categorical[*CallLog]{
			{Value: callType, Get: func(l *CallLog) string { return l.Type }},
			{Value: status, Get: func(l *CallLog) string { return l.Status }},
		})
}
