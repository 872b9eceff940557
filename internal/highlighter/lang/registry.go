package lang

import (
	"strings"
	"sync"

	"github.com/bethropolis/multitab/internal/logger"
)

// Registry maps file extensions to languages.
type Registry struct {
	mu            sync.RWMutex
	languages     []*Language
	extToLanguage map[string]*Language
}

func NewRegistry() *Registry {
	return &Registry{extToLanguage: make(map[string]*Language)}
}

// Register adds a language. A later registration of an extension wins.
func (r *Registry) Register(lang *Language) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.languages = append(r.languages, lang)
	for _, ext := range lang.Extensions {
		lowerExt := strings.ToLower(strings.TrimPrefix(ext, "."))
		if existing, ok := r.extToLanguage[lowerExt]; ok {
			logger.Warnf("Extension %s already registered to %s, overriding with %s",
				lowerExt, existing.Name, lang.Name)
		}
		r.extToLanguage[lowerExt] = lang
	}

	logger.DebugTagf("highlight", "Registered language: %s with extensions: %v", lang.Name, lang.Extensions)
}

// ForExtension returns the language for ext (without the dot), or nil.
func (r *Registry) ForExtension(ext string) *Language {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.extToLanguage[strings.ToLower(ext)]
}

// All returns the registered languages in registration order.
func (r *Registry) All() []*Language {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*Language, len(r.languages))
	copy(result, r.languages)
	return result
}
