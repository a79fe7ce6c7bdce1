package memstore

import (
	"sort"

	"github.com/quilldb/dbdigest/internal/core/domain"
)

// docVersion is one committed version of a document.
type docVersion struct {
	ts      domain.Timestamp
	data    []byte
	deleted bool
}

// collectionData holds a collection's document versions. Guarded by the
// engine mutex; shared across catalog clones so every view reads the same
// committed history.
type collectionData struct {
	// docs maps primary key to its versions in ascending commit order.
	docs map[string][]docVersion

	// natural is the native storage order of keys. Insertion order for
	// ordinary and capped collections; primary-key order for clustered
	// collections, whose storage order is their key order by construction.
	natural   []string
	clustered bool
}

func newCollectionData(clustered bool) *collectionData {
	return &collectionData{
		docs:      make(map[string][]docVersion),
		clustered: clustered,
	}
}

func (d *collectionData) append(key string, version docVersion) {
	if _, seen := d.docs[key]; !seen {
		if d.clustered {
			i := sort.SearchStrings(d.natural, key)
			d.natural = append(d.natural, "")
			copy(d.natural[i+1:], d.natural[i:])
			d.natural[i] = key
		} else {
			d.natural = append(d.natural, key)
		}
	}
	d.docs[key] = append(d.docs[key], version)
}

// visibleAt returns the document bytes visible at ts, or ok=false when the
// document did not exist (or was deleted) at that instant.
func (d *collectionData) visibleAt(key string, ts domain.Timestamp) ([]byte, bool) {
	versions := d.docs[key]
	for i := len(versions) - 1; i >= 0; i-- {
		if versions[i].ts <= ts {
			if versions[i].deleted {
				return nil, false
			}
			return versions[i].data, true
		}
	}
	return nil, false
}

// keysInOrder returns the keys to walk for a scan order.
func (d *collectionData) keysInOrder(order domain.ScanOrder) []string {
	switch order {
	case domain.ScanPrimaryKey:
		keys := make([]string, 0, len(d.docs))
		for key := range d.docs {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		return keys
	default:
		keys := make([]string, len(d.natural))
		copy(keys, d.natural)
		return keys
	}
}
