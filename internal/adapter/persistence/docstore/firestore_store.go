package docstore

import (
	"context"
	"errors"
	"sort"
	"time"

	"portfolio_backend/internal/usecase/interfaces"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// FirestoreStore keeps each collection as a Firestore collection. The document
// id lives in the document name, not in its fields.
type FirestoreStore struct {
	client *firestore.Client
	now    func() time.Time
}

var _ interfaces.IDocumentStore = (*FirestoreStore)(nil)

func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client, now: time.Now}
}

func (s *FirestoreStore) Create(ctx context.Context, collection string, doc interfaces.Document) (interfaces.Document, error) {
	data := cloneDocument(doc)
	delete(data, interfaces.FieldID)
	data[interfaces.FieldCreatedAt] = FormatTimestamp(s.now())

	ref := s.client.Collection(collection).NewDoc()
	if _, err := ref.Create(ctx, map[string]any(data)); err != nil {
		return nil, err
	}
	data[interfaces.FieldID] = ref.ID
	return data, nil
}

func (s *FirestoreStore) Get(ctx context.Context, collection, id string) (interfaces.Document, error) {
	snap, err := s.client.Collection(collection).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, interfaces.ErrDocumentNotFound
		}
		return nil, err
	}
	return snapshotDocument(snap), nil
}

func (s *FirestoreStore) List(ctx context.Context, collection, orderBy string, dir interfaces.SortDirection) ([]interfaces.Document, error) {
	q := s.client.Collection(collection).Query
	if orderBy != "" {
		q = q.OrderBy(orderBy, firestoreDirection(dir))
	}
	snaps, err := q.Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}
	return snapshotDocuments(snaps), nil
}

func (s *FirestoreStore) Query(ctx context.Context, collection, field string, value any) ([]interfaces.Document, error) {
	q := s.client.Collection(collection).WhereEntity(firestore.PropertyFilter{
		Path:     field,
		Operator: "==",
		Value:    value,
	})
	snaps, err := q.Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}
	return snapshotDocuments(snaps), nil
}

func (s *FirestoreStore) Update(ctx context.Context, collection, id string, fields interfaces.Document) error {
	updates := toUpdates(fields)
	if len(updates) == 0 {
		_, err := s.Get(ctx, collection, id)
		return err
	}
	_, err := s.client.Collection(collection).Doc(id).Update(ctx, updates)
	if err != nil && isNotFound(err) {
		return interfaces.ErrDocumentNotFound
	}
	return err
}

func (s *FirestoreStore) Delete(ctx context.Context, collection, id string) error {
	_, err := s.client.Collection(collection).Doc(id).Delete(ctx)
	return err
}

// BatchUpdate queues every update on a BulkWriter. Firestore applies each
// write independently, so some ids may fail while others land.
func (s *FirestoreStore) BatchUpdate(ctx context.Context, collection string, ids []string, fields interfaces.Document) error {
	updates := toUpdates(fields)
	if len(ids) == 0 || len(updates) == 0 {
		return nil
	}

	bw := s.client.BulkWriter(ctx)
	jobs := make(map[string]*firestore.BulkWriterJob, len(ids))
	failed := make(map[string]error)
	for _, id := range ids {
		job, err := bw.Update(s.client.Collection(collection).Doc(id), updates)
		if err != nil {
			failed[id] = err
			continue
		}
		jobs[id] = job
	}
	bw.End()

	for id, job := range jobs {
		if _, err := job.Results(); err != nil {
			if isNotFound(err) {
				err = interfaces.ErrDocumentNotFound
			}
			failed[id] = err
		}
	}
	if len(failed) > 0 {
		return &interfaces.BatchUpdateError{Collection: collection, Failed: failed}
	}
	return nil
}

func toUpdates(fields interfaces.Document) []firestore.Update {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		if k == interfaces.FieldID || k == interfaces.FieldCreatedAt {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	updates := make([]firestore.Update, 0, len(keys))
	for _, k := range keys {
		updates = append(updates, firestore.Update{Path: k, Value: fields[k]})
	}
	return updates
}

func firestoreDirection(dir interfaces.SortDirection) firestore.Direction {
	if dir == interfaces.SortDescending {
		return firestore.Desc
	}
	return firestore.Asc
}

func snapshotDocument(snap *firestore.DocumentSnapshot) interfaces.Document {
	doc := interfaces.Document(snap.Data())
	if doc == nil {
		doc = interfaces.Document{}
	}
	doc[interfaces.FieldID] = snap.Ref.ID
	return doc
}

func snapshotDocuments(snaps []*firestore.DocumentSnapshot) []interfaces.Document {
	docs := make([]interfaces.Document, 0, len(snaps))
	for _, snap := range snaps {
		docs = append(docs, snapshotDocument(snap))
	}
	return docs
}

func isNotFound(err error) bool {
	if errors.Is(err, interfaces.ErrDocumentNotFound) {
		return true
	}
	return status.Code(err) == codes.NotFound
}
