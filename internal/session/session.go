package session

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/meal-maker/internal/mealdb"
	"github.com/ytget/meal-maker/internal/model"
	"github.com/ytget/meal-maker/internal/platform"
	"github.com/ytget/meal-maker/internal/render"
	"github.com/ytget/meal-maker/internal/thumbnail"
)

// RequestIDPrefix prefixes every generated request ID
const RequestIDPrefix = "req-"

type fetchFunc func(ctx context.Context, source mealdb.Source) (*model.Recipe, error)

// State is the snapshot of what the main window shows
type State struct {
	RequestID string
	Query     QueryKind
	Term      string
	Status    model.ViewStatus
	Recipe    *model.Recipe
	Document  render.Document
	Thumbnail *thumbnail.Thumbnail
	Err       error
	UpdatedAt time.Time

	version uint64
}

// Session owns the current State and the single in-flight fetch
type Session struct {
	source mealdb.Source
	images thumbnail.Loader

	mu       sync.Mutex
	state    State
	version  uint64
	cancel   context.CancelFunc
	options  render.Options
	messages Messages

	publishMu sync.Mutex
	onUpdate  func(State) // callback for UI updates
	opener    func(string) error

	wg sync.WaitGroup
}

// NewSession creates a new session
func NewSession(source mealdb.Source, images thumbnail.Loader) *Session {
	return &Session{
		source:   source,
		images:   images,
		state:    State{Status: model.ViewStatusIdle, UpdatedAt: time.Now()},
		messages: DefaultMessages(),
		opener:   platform.OpenURL,
	}
}

// SetUpdateCallback sets the callback function for state updates.
// The callback may run on any goroutine.
func (s *Session) SetUpdateCallback(callback func(State)) {
	s.publishMu.Lock()
	defer s.publishMu.Unlock()
	s.onUpdate = callback
}

// SetSource replaces the recipe source used by subsequent queries
func (s *Session) SetSource(source mealdb.Source) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.source = source
}

// SetImages replaces the thumbnail loader used by subsequent queries
func (s *Session) SetImages(images thumbnail.Loader) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.images = images
}

// SetOpener replaces the function used to open links
func (s *Session) SetOpener(opener func(string) error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.opener = opener
}

// SetOptions changes recipe formatting and re-renders a displayed recipe
func (s *Session) SetOptions(opts render.Options) {
	s.mu.Lock()
	s.options = opts
	if s.state.Status != model.ViewStatusDisplaying || s.state.Recipe == nil {
		s.mu.Unlock()
		return
	}
	s.state.Document = render.Render(s.state.Recipe, opts)
	next := s.commitLocked(s.state)
	s.mu.Unlock()

	s.publish(next)
}

// SetMessages changes the user-facing texts and re-renders a displayed message
func (s *Session) SetMessages(messages Messages) {
	s.mu.Lock()
	s.messages = messages
	if s.state.Status != model.ViewStatusMessage || s.state.Err == nil {
		s.mu.Unlock()
		return
	}
	s.state.Document = render.RenderMessage(messages.For(s.state.Query, s.state.Err))
	next := s.commitLocked(s.state)
	s.mu.Unlock()

	s.publish(next)
}

// State returns the current state
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Search looks up a meal by name and returns the request ID.
// An empty term shows the empty-query message without any network call.
func (s *Session) Search(term string) string {
	term = strings.TrimSpace(term)
	if term == "" {
		return s.showError(QuerySearch, term, mealdb.ErrEmptyQuery)
	}

	log.Printf("Search requested: term=%q", term)
	return s.start(QuerySearch, term, func(ctx context.Context, source mealdb.Source) (*model.Recipe, error) {
		return source.SearchByName(ctx, term)
	})
}

// Randomize fetches a random meal and returns the request ID
func (s *Session) Randomize() string {
	log.Printf("Random meal requested")
	return s.start(QueryRandom, "", func(ctx context.Context, source mealdb.Source) (*model.Recipe, error) {
		return source.Random(ctx)
	})
}

// Cancel abandons the in-flight fetch, if any, and returns to idle with the
// previous document still shown.
func (s *Session) Cancel() {
	s.mu.Lock()
	if s.cancel == nil {
		s.mu.Unlock()
		return
	}
	s.cancel()
	s.cancel = nil

	idle := s.state
	idle.Status = model.ViewStatusIdle
	next := s.commitLocked(idle)
	s.mu.Unlock()

	log.Printf("Request %s canceled", next.RequestID)
	s.publish(next)
}

// Wait blocks until background fetches have returned
func (s *Session) Wait() {
	s.wg.Wait()
}

// ActivateLink opens the link with the given index in the current document
func (s *Session) ActivateLink(index int) bool {
	s.mu.Lock()
	link, ok := s.state.Document.LinkAt(index)
	opener := s.opener
	s.mu.Unlock()

	if !ok {
		return false
	}
	s.open(opener, link.URL)
	return true
}

// ActivateAt opens the link at offset in the current document text, or
// the first link found after it.
func (s *Session) ActivateAt(offset int) bool {
	s.mu.Lock()
	doc := s.state.Document
	opener := s.opener
	s.mu.Unlock()

	if line, ok := doc.LineAt(offset); ok {
		if link, ok := doc.LinkOnLine(line); ok {
			s.open(opener, link.URL)
			return true
		}
	}

	url, ok := render.FindLinkAfter(doc.Text(), offset)
	if !ok {
		return false
	}
	s.open(opener, url)
	return true
}

// open hands url to the opener without waiting for the result
func (s *Session) open(opener func(string) error, url string) {
	if opener == nil {
		return
	}
	log.Printf("Opening link: %s", url)
	go func() {
		if err := opener(url); err != nil {
			log.Printf("Failed to open link %s: %v", url, err)
		}
	}()
}

// start supersedes any in-flight fetch and runs fetch in the background
func (s *Session) start(kind QueryKind, term string, fetch fetchFunc) string {
	id := generateRequestID()
	ctx, cancel := context.WithCancel(context.Background())

	s.mu.Lock()
	if s.cancel != nil {
		log.Printf("Superseding in-flight request %s", s.state.RequestID)
		s.cancel()
	}
	s.cancel = cancel
	source, images := s.source, s.images

	// Keep the previous document visible while loading
	loading := s.state
	loading.RequestID = id
	loading.Query = kind
	loading.Term = term
	loading.Status = model.ViewStatusLoading
	loading.Err = nil
	next := s.commitLocked(loading)
	s.wg.Add(1)
	s.mu.Unlock()

	s.publish(next)

	go s.run(ctx, cancel, id, kind, term, func(ctx context.Context) (*model.Recipe, *thumbnail.Thumbnail, error) {
		recipe, err := fetch(ctx, source)
		if err != nil {
			return nil, nil, err
		}
		if recipe == nil {
			return nil, nil, mealdb.ErrNotFound
		}
		return recipe, images.Load(ctx, recipe.ThumbnailURL), nil
	})
	return id
}

// run performs the fetch and commits the result if the request is still current
func (s *Session) run(ctx context.Context, cancel context.CancelFunc, id string, kind QueryKind, term string, load func(context.Context) (*model.Recipe, *thumbnail.Thumbnail, error)) {
	defer s.wg.Done()
	defer cancel()

	started := time.Now()
	recipe, thumb, err := load(ctx)

	if ctx.Err() != nil {
		log.Printf("Request %s abandoned after %s", id, time.Since(started).Round(time.Millisecond))
		return
	}

	s.mu.Lock()
	// Cancel and supersede both cancel ctx under s.mu
	if ctx.Err() != nil || s.state.RequestID != id {
		s.mu.Unlock()
		log.Printf("Request %s superseded, dropping result", id)
		return
	}
	s.cancel = nil

	var next State
	if err != nil {
		next = s.errorStateLocked(id, kind, term, err)
	} else {
		next = State{
			RequestID: id,
			Query:     kind,
			Term:      term,
			Status:    model.ViewStatusDisplaying,
			Recipe:    recipe,
			Document:  render.Render(recipe, s.options),
			Thumbnail: thumb,
		}
	}
	next = s.commitLocked(next)
	s.mu.Unlock()

	if err != nil {
		log.Printf("Request %s (%s) failed: %v", id, kind, err)
	} else {
		log.Printf("Request %s (%s) displayed %q (id=%s) in %s",
			id, kind, recipe.Name, recipe.ID, time.Since(started).Round(time.Millisecond))
	}

	s.publish(next)
}

// showError cancels any in-flight fetch and shows the message for err
func (s *Session) showError(kind QueryKind, term string, err error) string {
	id := generateRequestID()

	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	next := s.commitLocked(s.errorStateLocked(id, kind, term, err))
	s.mu.Unlock()

	s.publish(next)
	return id
}

// errorStateLocked builds a message state; the previous thumbnail stays
func (s *Session) errorStateLocked(id string, kind QueryKind, term string, err error) State {
	var fetchErr *mealdb.FetchError
	if errors.As(err, &fetchErr) {
		log.Printf("Fetch error for %s: status=%d url=%s", kind, fetchErr.StatusCode, fetchErr.URL)
	}

	return State{
		RequestID: id,
		Query:     kind,
		Term:      term,
		Status:    model.ViewStatusMessage,
		Document:  render.RenderMessage(s.messages.For(kind, err)),
		Thumbnail: s.state.Thumbnail,
		Err:       err,
	}
}

// commitLocked stores next as the current state; s.mu must be held
func (s *Session) commitLocked(next State) State {
	s.version++
	next.version = s.version
	next.UpdatedAt = time.Now()
	s.state = next
	return next
}

// publish calls the update callback unless a newer state was committed meanwhile
func (s *Session) publish(st State) {
	s.publishMu.Lock()
	defer s.publishMu.Unlock()

	s.mu.Lock()
	current := s.version == st.version
	s.mu.Unlock()

	if !current || s.onUpdate == nil {
		return
	}
	s.onUpdate(st)
}

// generateRequestID generates a unique request ID
func generateRequestID() string {
	return RequestIDPrefix + uuid.NewString()
}
