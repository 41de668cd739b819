package export

import (
	"fmt"
	"strings"
)

// PairsForFormats filters DefaultPairs down to the requested file kinds.
// Format names are case-insensitive and may carry a leading dot. An empty
// list selects every pair; an unknown name is an error.
func PairsForFormats(formats []string) ([]Pair, error) {
	all := DefaultPairs()
	if len(formats) == 0 {
		return all, nil
	}

	wanted := make(map[FileKind]bool, len(formats))
	for _, format := range formats {
		name := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(format), "."))
		if name == "" {
			continue
		}
		switch kind := FileKind(name); kind {
		case FileTXT, FileDOCX, FileSRT, FileVTT:
			wanted[kind] = true
		default:
			return nil, fmt.Errorf("unknown export format %q", format)
		}
	}
	if len(wanted) == 0 {
		return all, nil
	}

	pairs := make([]Pair, 0, len(all))
	for _, pair := range all {
		if wanted[pair.File] {
			pairs = append(pairs, pair)
		}
	}
	return pairs, nil
}
