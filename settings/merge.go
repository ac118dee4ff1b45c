package settings

import "sort"

// Merge deep-combines overrides into a private copy of defaults and returns
// the copy. Neither argument is mutated, and values taken from overrides
// are cloned so the result never aliases caller-owned structures.
//
// Per key present in overrides:
//   - key absent from defaults: the override value is copied verbatim
//   - scalar vs scalar of the same type: override replaces default
//   - sequence vs sequence: concatenation, defaults first, duplicates kept
//   - mapping vs mapping: recursive merge, default-only keys preserved
//   - any other combination: TypeMismatchError or StructureMismatchError
//
// Keys are processed in sorted order so a failed merge leaves a
// deterministic set of already-merged keys behind in the discarded copy.
// The first incompatible key aborts the merge.
func Merge(defaults map[string]any, overrides any) (map[string]any, error) {
	if overrides == nil {
		return Clone(defaults), nil
	}
	if KindOf(overrides) != KindMapping {
		return nil, &InvalidArgumentError{Value: overrides}
	}
	over, ok := asMapping(overrides)
	if !ok {
		return nil, &InvalidArgumentError{Value: overrides}
	}

	merged := Clone(defaults)
	if merged == nil {
		merged = make(map[string]any, len(over))
	}
	if err := mergeInto(merged, over, ""); err != nil {
		return nil, err
	}
	return merged, nil
}

func mergeInto(dst, over map[string]any, path string) error {
	keys := make([]string, 0, len(over))
	for k := range over {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		o := over[k]
		d, present := dst[k]
		if !present || d == nil {
			dst[k] = cloneValue(o)
			continue
		}

		dk, vk := KindOf(d), KindOf(o)
		switch {
		case dk == KindScalar && vk == KindScalar:
			if dt, ot := scalarType(d), scalarType(o); dt != ot {
				return &TypeMismatchError{Key: joinKey(path, k), DefaultType: dt, OverrideType: ot}
			}
			dst[k] = o

		case dk == KindScalar || vk == KindScalar:
			return &TypeMismatchError{
				Key:          joinKey(path, k),
				DefaultType:  typeName(d),
				OverrideType: typeName(o),
			}

		case dk == KindSequence && vk == KindSequence:
			dst[k] = concat(asSequence(d), asSequence(o))

		case dk == KindMapping && vk == KindMapping:
			dm, dok := asMapping(d)
			om, ook := asMapping(o)
			if !dok || !ook {
				return &StructureMismatchError{Key: joinKey(path, k)}
			}
			// Clone may have normalized already, but d can still be the
			// original typed map when defaults arrived pre-cloned.
			if _, same := d.(map[string]any); !same {
				dst[k] = dm
			}
			if err := mergeInto(dm, om, joinKey(path, k)); err != nil {
				return err
			}

		default:
			return &StructureMismatchError{Key: joinKey(path, k)}
		}
	}
	return nil
}

func concat(d, o []any) []any {
	out := make([]any, 0, len(d)+len(o))
	for _, e := range d {
		out = append(out, cloneValue(e))
	}
	for _, e := range o {
		out = append(out, cloneValue(e))
	}
	return out
}

func joinKey(path, k string) string {
	if path == "" {
		return k
	}
	return path + "." + k
}
