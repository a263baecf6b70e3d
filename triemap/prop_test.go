package triemap_test

import (
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/npillmayer/keytrie/triemap"
)

// mapOp is one step of a random operation sequence driven against both the
// persistent map and a plain Go map as the model.
type mapOp struct {
	Kind  int // 0 = set, 1 = delete, 2 = update
	Key   int
	Value int
}

func genOps() gopter.Gen {
	return gen.SliceOf(gen.Struct(reflect.TypeOf(mapOp{}), map[string]gopter.Gen{
		"Kind":  gen.IntRange(0, 2),
		"Key":   gen.IntRange(0, 20), // small key space forces collisions
		"Value": gen.IntRange(0, 1000),
	}))
}

func TestOrderedAgainstModel(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("ordered map agrees with Go map model",
		prop.ForAll(func(ops []mapOp) bool {
			m := triemap.New[int, int](triemap.Ordered[int]())
			model := map[int]int{}
			for _, op := range ops {
				switch op.Kind {
				case 0:
					m = triemap.Set(m, op.Key, op.Value)
					model[op.Key] = op.Value
				case 1:
					m = triemap.Delete(m, op.Key)
					delete(model, op.Key)
				case 2:
					m = triemap.Update(m, op.Key, func(n int) int { return n + 1 })
					if v, ok := model[op.Key]; ok {
						model[op.Key] = v + 1
					}
				}
			}
			for k := 0; k <= 20; k++ {
				want, stored := model[k]
				got, present := triemap.Get(m, k).Value()
				if stored != present || (stored && want != got) {
					return false
				}
			}
			return true
		}, genOps()))

	properties.TestingRun(t)
}

func TestProductLawAgainstModel(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	mk := triemap.Pairs(triemap.Ordered[int](), triemap.Ordered[int]())
	properties.Property("product updates are independent per composite key",
		prop.ForAll(func(ops []mapOp) bool {
			m := triemap.New[triemap.Pair[int, int], int](mk)
			model := map[triemap.Pair[int, int]]int{}
			for _, op := range ops {
				key := triemap.P(op.Key/5, op.Key%5)
				if op.Kind == 1 {
					m = triemap.Delete(m, key)
					delete(model, key)
				} else {
					m = triemap.Set(m, key, op.Value)
					model[key] = op.Value
				}
			}
			for a := 0; a <= 4; a++ {
				for b := 0; b <= 4; b++ {
					key := triemap.P(a, b)
					want, stored := model[key]
					got, present := triemap.Get(m, key).Value()
					if stored != present || (stored && want != got) {
						return false
					}
				}
			}
			return true
		}, genOps()))

	properties.TestingRun(t)
}

func TestSliceTrieAgainstModel(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("slice trie agrees with Go map model",
		prop.ForAll(func(keys []string, values []int) bool {
			m := triemap.New[[]byte, int](triemap.Slices(triemap.Ordered[byte]()))
			model := map[string]int{}
			for i, key := range keys {
				v := i
				if i < len(values) {
					v = values[i]
				}
				m = triemap.Set(m, []byte(key), v)
				model[key] = v
			}
			for key, want := range model {
				got, err := m.Lookup([]byte(key))
				if err != nil || got != want {
					return false
				}
			}
			return true
		},
			gen.SliceOf(gen.AlphaString()),
			gen.SliceOf(gen.IntRange(0, 1000))))

	properties.TestingRun(t)
}
