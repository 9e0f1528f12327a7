package mongodb

import (
	"bytes"
	"context"
	"reflect"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// fakeCollection is an in-memory CollectionInterface that understands the
// equality filters, $set, $inc, sort and limit used by the repositories.
type fakeCollection struct {
	mu        sync.Mutex
	docs      []bson.M
	indexes   []mongo.IndexModel
	insertErr error
	findErr   error
	updateErr error
	deleteErr error
	indexErr  error
}

func newFakeCollection() *fakeCollection {
	return &fakeCollection{}
}

func roundTrip(v interface{}) (bson.M, error) {
	raw, err := bson.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out bson.M
	if err := bson.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (f *fakeCollection) InsertOne(ctx context.Context, doc interface{}) (interface{}, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	m, err := roundTrip(doc)
	if err != nil {
		return nil, err
	}
	if _, ok := m["_id"]; !ok {
		m["_id"] = primitive.NewObjectID()
	}
	f.docs = append(f.docs, m)
	return m["_id"], nil
}

func (f *fakeCollection) FindOne(ctx context.Context, filter interface{}) SingleResultInterface {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findErr != nil {
		return &fakeSingleResult{err: f.findErr}
	}
	if idx := f.indexOf(filter.(bson.M)); idx >= 0 {
		return &fakeSingleResult{doc: f.docs[idx]}
	}
	return &fakeSingleResult{err: mongo.ErrNoDocuments}
}

func (f *fakeCollection) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (CursorInterface, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findErr != nil {
		return nil, f.findErr
	}
	var out []bson.M
	for _, d := range f.docs {
		if matches(d, filter.(bson.M)) {
			out = append(out, d)
		}
	}
	for _, o := range opts {
		if o == nil {
			continue
		}
		if o.Sort != nil {
			for i := len(o.Sort.(bson.D)) - 1; i >= 0; i-- {
				key := o.Sort.(bson.D)[i]
				dir := key.Value.(int)
				sort.SliceStable(out, func(a, b int) bool {
					c := compareValues(out[a][key.Key], out[b][key.Key])
					if dir < 0 {
						return c > 0
					}
					return c < 0
				})
			}
		}
		if o.Limit != nil && int64(len(out)) > *o.Limit {
			out = out[:*o.Limit]
		}
	}
	return &fakeCursor{docs: out}, nil
}

func (f *fakeCollection) UpdateOne(ctx context.Context, filter interface{}, update interface{}) (UpdateResultInterface, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	idx := f.indexOf(filter.(bson.M))
	if idx < 0 {
		return &fakeUpdateResult{}, nil
	}
	doc := f.docs[idx]
	before, _ := roundTrip(doc)
	u := update.(bson.M)
	if set, ok := u["$set"].(bson.M); ok {
		normalized, err := roundTrip(set)
		if err != nil {
			return nil, err
		}
		for k, v := range normalized {
			doc[k] = v
		}
	}
	if inc, ok := u["$inc"].(bson.M); ok {
		for k, v := range inc {
			doc[k] = addNumbers(doc[k], v)
		}
	}
	res := &fakeUpdateResult{matched: 1}
	if !reflect.DeepEqual(before, doc) {
		res.modified = 1
	}
	return res, nil
}

func (f *fakeCollection) DeleteOne(ctx context.Context, filter interface{}) (DeleteResultInterface, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return nil, f.deleteErr
	}
	idx := f.indexOf(filter.(bson.M))
	if idx < 0 {
		return &mongoDeleteResult{}, nil
	}
	f.docs = append(f.docs[:idx], f.docs[idx+1:]...)
	return &mongoDeleteResult{deleted: 1}, nil
}

func (f *fakeCollection) CreateIndex(ctx context.Context, index mongo.IndexModel) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.indexErr != nil {
		return "", f.indexErr
	}
	f.indexes = append(f.indexes, index)
	return "idx", nil
}

func (f *fakeCollection) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.docs)
}

func (f *fakeCollection) indexOf(filter bson.M) int {
	for i, d := range f.docs {
		if matches(d, filter) {
			return i
		}
	}
	return -1
}

func matches(doc bson.M, filter bson.M) bool {
	for k, want := range filter {
		got, ok := doc[k]
		if want == nil {
			if ok && got != nil {
				return false
			}
			continue
		}
		if !ok || !reflect.DeepEqual(got, want) {
			return false
		}
	}
	return true
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

func addNumbers(current, delta interface{}) interface{} {
	if current == nil {
		return delta
	}
	ci, cInt := current.(int64)
	di, dInt := delta.(int64)
	if cInt && dInt {
		return ci + di
	}
	c, _ := toFloat(current)
	d, _ := toFloat(delta)
	return c + d
}

func compareValues(a, b interface{}) int {
	if a == nil || b == nil {
		switch {
		case a == nil && b == nil:
			return 0
		case a == nil:
			return -1
		default:
			return 1
		}
	}
	if af, ok := toFloat(a); ok {
		if bf, ok := toFloat(b); ok {
			switch {
			case af < bf:
				return -1
			case af > bf:
				return 1
			}
			return 0
		}
	}
	if ao, ok := a.(primitive.ObjectID); ok {
		bo := b.(primitive.ObjectID)
		return bytes.Compare(ao[:], bo[:])
	}
	as, _ := a.(string)
	bs, _ := b.(string)
	switch {
	case as < bs:
		return -1
	case as > bs:
		return 1
	}
	return 0
}

type fakeSingleResult struct {
	doc bson.M
	err error
}

func (r *fakeSingleResult) Decode(v interface{}) error {
	if r.err != nil {
		return r.err
	}
	raw, err := bson.Marshal(r.doc)
	if err != nil {
		return err
	}
	return bson.Unmarshal(raw, v)
}

type fakeUpdateResult struct {
	matched  int64
	modified int64
}

func (r *fakeUpdateResult) Matched() int64          { return r.matched }
func (r *fakeUpdateResult) Modified() int64         { return r.modified }
func (r *fakeUpdateResult) UpsertedID() interface{} { return nil }

type fakeCursor struct {
	docs []bson.M
	pos  int
}

func (c *fakeCursor) Next(ctx context.Context) bool {
	if c.pos >= len(c.docs) {
		return false
	}
	c.pos++
	return true
}

func (c *fakeCursor) Decode(val interface{}) error {
	raw, err := bson.Marshal(c.docs[c.pos-1])
	if err != nil {
		return err
	}
	return bson.Unmarshal(raw, val)
}

func (c *fakeCursor) Close(ctx context.Context) error { return nil }
func (c *fakeCursor) Err() error                      { return nil }
