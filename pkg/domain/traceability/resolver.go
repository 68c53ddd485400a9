package traceability

// ServiceIndex resolves use case service references. A reference may be a
// service id or a service name; every traceability check resolves through this
// index so the tie-break stays uniform: id match first, then name match, first
// service in scan order wins.
type ServiceIndex struct {
	services []*Service
	byID     map[string]*Service
}

func NewServiceIndex(services []*Service) *ServiceIndex {
	idx := &ServiceIndex{services: services, byID: make(map[string]*Service, len(services))}
	for _, s := range services {
		if _, ok := idx.byID[s.ID]; !ok {
			idx.byID[s.ID] = s
		}
	}
	return idx
}

// Resolve returns the service a reference points at, trying id then name.
func (idx *ServiceIndex) Resolve(ref string) (*Service, bool) {
	if s, ok := idx.byID[ref]; ok {
		return s, true
	}
	for _, s := range idx.services {
		if s.Name == ref {
			return s, true
		}
	}
	return nil, false
}
