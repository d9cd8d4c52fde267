package watches

import (
	"context"
	"fmt"
	"log"

	"wordwatch/core"
	"wordwatch/models"
)

// WatchesRepository defines the interface for watch index repository operations
type WatchesRepository interface {
	AddWatchedWord(ctx context.Context, watch *models.WatchedWord) (bool, error)
	RemoveWatchedWord(ctx context.Context, serverID, userID, word string) (bool, error)
	GetWatchedWordsByServerAndUser(ctx context.Context, serverID, userID string) ([]*models.WatchedWord, error)
	GetWatchersForWords(ctx context.Context, serverID string, words []string) ([]*models.WatchedWord, error)
}

// Tokenizer is the canonical message normalization shared by
// registration, removal and scanning.
type Tokenizer func(text string) []string

type WatchesService struct {
	watchesRepo WatchesRepository
	tokenize    Tokenizer
}

func NewWatchesService(repo WatchesRepository, tokenize Tokenizer) *WatchesService {
	return &WatchesService{watchesRepo: repo, tokenize: tokenize}
}

func (s *WatchesService) RegisterWords(
	ctx context.Context,
	serverID, userID string,
	words []string,
) ([]string, error) {
	log.Printf("📋 Starting to register %d word(s) for user %s in server %s", len(words), userID, serverID)
	if serverID == "" {
		return nil, fmt.Errorf("server ID cannot be empty")
	}
	if userID == "" {
		return nil, fmt.Errorf("user ID cannot be empty")
	}

	// Each word commits independently - a failure on one word must not
	// roll back words already registered in this call.
	added := []string{}
	for _, word := range words {
		if word == "" {
			continue
		}

		watch := &models.WatchedWord{
			ID:       core.NewID("ww"),
			Word:     word,
			ServerID: serverID,
			UserID:   userID,
		}
		created, err := s.watchesRepo.AddWatchedWord(ctx, watch)
		if err != nil {
			return added, fmt.Errorf("failed to register word %q: %w", word, err)
		}
		if !created {
			log.Printf("🔍 User %s already watches %q in server %s - skipping", userID, word, serverID)
			continue
		}
		added = append(added, word)
	}

	log.Printf("📋 Completed successfully - registered %d of %d word(s) for user %s", len(added), len(words), userID)
	return added, nil
}

func (s *WatchesService) UnregisterWords(
	ctx context.Context,
	serverID, userID string,
	words []string,
) ([]string, error) {
	log.Printf("📋 Starting to unregister %d word(s) for user %s in server %s", len(words), userID, serverID)
	if serverID == "" {
		return nil, fmt.Errorf("server ID cannot be empty")
	}
	if userID == "" {
		return nil, fmt.Errorf("user ID cannot be empty")
	}

	removed := []string{}
	for _, word := range words {
		if word == "" {
			continue
		}

		deleted, err := s.watchesRepo.RemoveWatchedWord(ctx, serverID, userID, word)
		if err != nil {
			return removed, fmt.Errorf("failed to unregister word %q: %w", word, err)
		}
		if !deleted {
			continue
		}
		removed = append(removed, word)
	}

	log.Printf("📋 Completed successfully - unregistered %d of %d word(s) for user %s", len(removed), len(words), userID)
	return removed, nil
}

func (s *WatchesService) ScanMessage(
	ctx context.Context,
	serverID, authorID, messageText string,
) (map[string][]string, error) {
	if serverID == "" {
		return nil, fmt.Errorf("server ID cannot be empty")
	}

	tokens := s.tokenize(messageText)
	if len(tokens) == 0 {
		return map[string][]string{}, nil
	}

	// Single indexed lookup over the distinct token set
	seen := make(map[string]bool, len(tokens))
	distinct := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if seen[token] {
			continue
		}
		seen[token] = true
		distinct = append(distinct, token)
	}

	watchers, err := s.watchesRepo.GetWatchersForWords(ctx, serverID, distinct)
	if err != nil {
		return nil, fmt.Errorf("failed to look up watchers: %w", err)
	}
	if len(watchers) == 0 {
		return map[string][]string{}, nil
	}

	usersByWord := make(map[string][]string)
	for _, watch := range watchers {
		usersByWord[watch.Word] = append(usersByWord[watch.Word], watch.UserID)
	}

	// Walk the tokens in message order so matched words aggregate in
	// order of appearance, once per occurrence.
	results := make(map[string][]string)
	for _, token := range tokens {
		for _, watcherID := range usersByWord[token] {
			results[watcherID] = append(results[watcherID], token)
		}
	}

	// A user is never notified about their own message
	delete(results, authorID)

	if len(results) > 0 {
		log.Printf("🔍 Found %d user(s) to notify for message in server %s", len(results), serverID)
	}
	return results, nil
}

func (s *WatchesService) ListWatchedWords(
	ctx context.Context,
	serverID, userID string,
) ([]string, error) {
	log.Printf("📋 Starting to list watched words for user %s in server %s", userID, serverID)
	if serverID == "" {
		return nil, fmt.Errorf("server ID cannot be empty")
	}
	if userID == "" {
		return nil, fmt.Errorf("user ID cannot be empty")
	}

	watches, err := s.watchesRepo.GetWatchedWordsByServerAndUser(ctx, serverID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list watched words: %w", err)
	}

	words := make([]string, 0, len(watches))
	for _, watch := range watches {
		words = append(words, watch.Word)
	}

	log.Printf("📋 Completed successfully - user %s watches %d word(s) in server %s", userID, len(words), serverID)
	return words, nil
}
