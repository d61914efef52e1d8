package services

import (
	"sync"

	"blog/pkg/models"
)

// SearchStore holds a read-only article set and the current search state.
// Each change recomputes the projection from scratch and notifies
// subscribers before returning.
type SearchStore struct {
	mu          sync.Mutex
	source      models.ArticleSet
	state       models.SearchState
	result      models.ArticleSet
	subscribers []func(models.ArticleSet)
}

func NewSearchStore(source models.ArticleSet) *SearchStore {
	s := &SearchStore{source: source}
	s.result = Project(source, "", nil)
	return s
}

// Subscribe registers fn and calls it once with the current result.
func (s *SearchStore) Subscribe(fn func(models.ArticleSet)) {
	s.mu.Lock()
	s.subscribers = append(s.subscribers, fn)
	result := s.result
	s.mu.Unlock()
	fn(result)
}

func (s *SearchStore) SetQuery(query string) {
	s.update(func(st *models.SearchState) { st.Query = query })
}

func (s *SearchStore) SetTags(tags []string) {
	s.update(func(st *models.SearchState) { st.Tags = append([]string(nil), tags...) })
}

// ToggleTag adds tag to the selection, or removes it when already selected.
func (s *SearchStore) ToggleTag(tag string) {
	s.update(func(st *models.SearchState) {
		for i, t := range st.Tags {
			if t == tag {
				st.Tags = append(st.Tags[:i:i], st.Tags[i+1:]...)
				return
			}
		}
		st.Tags = append(st.Tags, tag)
	})
}

// Apply replaces the whole state at once.
func (s *SearchStore) Apply(state models.SearchState) {
	s.update(func(st *models.SearchState) {
		st.Query = state.Query
		st.Tags = append([]string(nil), state.Tags...)
	})
}

func (s *SearchStore) Reset() {
	s.update(func(st *models.SearchState) { *st = models.SearchState{} })
}

func (s *SearchStore) State() models.SearchState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.SearchState{Query: s.state.Query, Tags: append([]string(nil), s.state.Tags...)}
}

func (s *SearchStore) Result() models.ArticleSet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result
}

func (s *SearchStore) update(change func(*models.SearchState)) {
	s.mu.Lock()
	change(&s.state)
	s.result = Project(s.source, s.state.Query, s.state.Tags)
	result := s.result
	subs := append([]func(models.ArticleSet){}, s.subscribers...)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(result)
	}
}
