package browser

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"

	perr "biblia/internal/platform/errors"
)

// LastSelectionKey is where the last selection lives in the KV store
const LastSelectionKey = "study:last"

// ErrStorageCorruption marks a stored selection that cannot be decoded
// Callers treat it as "nothing stored"
var ErrStorageCorruption = perr.New(perr.ErrorCodeStorage, "stored selection is corrupt")

// KV is the string key/value seam the selection is stored in
type KV interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}

// KVSelectionStore keeps the selection as JSON under LastSelectionKey
type KVSelectionStore struct {
	KV  KV
	Key string
}

// NewKVSelectionStore wraps kv using the default key
func NewKVSelectionStore(kv KV) *KVSelectionStore {
	return &KVSelectionStore{KV: kv, Key: LastSelectionKey}
}

type wireSelection struct {
	BookID  string          `json:"bookId"`
	Chapter json.RawMessage `json:"chapter"`
}

func (s *KVSelectionStore) key() string {
	if s.Key == "" {
		return LastSelectionKey
	}
	return s.Key
}

// Load implements SelectionStore
func (s *KVSelectionStore) Load(ctx context.Context) (Selection, bool, error) {
	raw, ok, err := s.KV.Get(ctx, s.key())
	if err != nil || !ok {
		return Selection{}, false, err
	}
	sel, err := DecodeSelection(raw)
	if err != nil {
		return Selection{}, false, err
	}
	return sel, true, nil
}

// Save implements SelectionStore
func (s *KVSelectionStore) Save(ctx context.Context, sel Selection) error {
	b, err := EncodeSelection(sel)
	if err != nil {
		return err
	}
	return s.KV.Set(ctx, s.key(), b)
}

// EncodeSelection renders {"bookId": ..., "chapter": N}
func EncodeSelection(sel Selection) (string, error) {
	if sel.BookID == "" || sel.Chapter < 1 {
		return "", perr.InvalidArgf("selection %q %d is incomplete", sel.BookID, sel.Chapter)
	}
	b, err := json.Marshal(struct {
		BookID  string `json:"bookId"`
		Chapter int    `json:"chapter"`
	}{sel.BookID, sel.Chapter})
	if err != nil {
		return "", perr.Wrap(err, perr.ErrorCodeJSON, "encode selection")
	}
	return string(b), nil
}

// DecodeSelection parses a stored selection. The chapter may be a number or
// a numeric string; anything else is ErrStorageCorruption
func DecodeSelection(raw string) (Selection, error) {
	var w wireSelection
	if err := json.Unmarshal([]byte(raw), &w); err != nil {
		return Selection{}, perr.Wrap(ErrStorageCorruption, perr.ErrorCodeStorage, err.Error())
	}
	n, ok := chapterOf(w.Chapter)
	if strings.TrimSpace(w.BookID) == "" || !ok {
		return Selection{}, perr.Wrap(ErrStorageCorruption, perr.ErrorCodeStorage, "missing book or chapter")
	}
	return Selection{BookID: w.BookID, Chapter: n}, nil
}

func chapterOf(raw json.RawMessage) (int, bool) {
	if len(raw) == 0 {
		return 0, false
	}
	var n int
	if err := json.Unmarshal(raw, &n); err == nil {
		return n, n >= 1
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	return n, err == nil && n >= 1
}
