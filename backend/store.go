package main

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/Arch-4ng3l/FamilyCalendar/backend/config"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Store is the document-store surface the handlers run against. The
// hierarchy is users/{uid}, families/{fid} with members and events
// sub-collections keyed by user id and event id respectively.
type Store interface {
	GetUser(ctx context.Context, id string) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	CreateUser(ctx context.Context, user *User) error
	SetUserFamily(ctx context.Context, userID, familyID string) error

	GetFamily(ctx context.Context, id string) (*Family, error)
	CreateFamily(ctx context.Context, family *Family) error

	GetMember(ctx context.Context, familyID, userID string) (*Member, error)
	GetMembers(ctx context.Context, familyID string) ([]Member, error)
	PutMember(ctx context.Context, familyID string, member Member) error

	GetEvent(ctx context.Context, familyID, id string) (*Event, error)
	GetEvents(ctx context.Context, familyID string) ([]Event, error)
	EventsStartingBetween(ctx context.Context, familyID string, from, to time.Time) ([]Event, error)
	EventsEndingBetween(ctx context.Context, familyID string, from, to time.Time) ([]Event, error)
	PutEvent(ctx context.Context, familyID string, event Event) error
	DeleteEvent(ctx context.Context, familyID, id string) error
}

type FirestoreStore struct {
	client *firestore.Client
}

func NewFirestoreStore(ctx context.Context, cfg config.Config) (*FirestoreStore, error) {
	client, err := firestore.NewClient(ctx, cfg.GoogleProjectID,
		option.WithCredentialsFile(cfg.GoogleCredentialsFile))
	if err != nil {
		return nil, err
	}
	return &FirestoreStore{client: client}, nil
}

func (s *FirestoreStore) Close() error {
	return s.client.Close()
}

func (s *FirestoreStore) users() *firestore.CollectionRef {
	return s.client.Collection("users")
}

func (s *FirestoreStore) families() *firestore.CollectionRef {
	return s.client.Collection("families")
}

func (s *FirestoreStore) members(familyID string) *firestore.CollectionRef {
	return s.families().Doc(familyID).Collection("members")
}

func (s *FirestoreStore) events(familyID string) *firestore.CollectionRef {
	return s.families().Doc(familyID).Collection("events")
}

func (s *FirestoreStore) GetUser(ctx context.Context, id string) (*User, error) {
	snap, err := s.users().Doc(id).Get(ctx)
	if err != nil {
		return nil, storeErr("get user", err)
	}
	user := &User{}
	if err := snap.DataTo(user); err != nil {
		return nil, &StoreError{Op: "decode user", Err: err}
	}
	return user, nil
}

func (s *FirestoreStore) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	iter := s.users().Where("email", "==", email).Limit(1).Documents(ctx)
	defer iter.Stop()

	snap, err := iter.Next()
	if err == iterator.Done {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, &StoreError{Op: "query user by email", Err: err}
	}
	user := &User{}
	if err := snap.DataTo(user); err != nil {
		return nil, &StoreError{Op: "decode user", Err: err}
	}
	return user, nil
}

func (s *FirestoreStore) CreateUser(ctx context.Context, user *User) error {
	if _, err := s.users().Doc(user.ID).Set(ctx, user); err != nil {
		return &StoreError{Op: "create user", Err: err}
	}
	return nil
}

func (s *FirestoreStore) SetUserFamily(ctx context.Context, userID, familyID string) error {
	_, err := s.users().Doc(userID).Update(ctx, []firestore.Update{
		{Path: "familyId", Value: familyID},
	})
	if err != nil {
		return storeErr("update user family", err)
	}
	return nil
}

func (s *FirestoreStore) GetFamily(ctx context.Context, id string) (*Family, error) {
	snap, err := s.families().Doc(id).Get(ctx)
	if err != nil {
		return nil, storeErr("get family", err)
	}
	family := &Family{}
	if err := snap.DataTo(family); err != nil {
		return nil, &StoreError{Op: "decode family", Err: err}
	}
	return family, nil
}

func (s *FirestoreStore) CreateFamily(ctx context.Context, family *Family) error {
	if _, err := s.families().Doc(family.ID).Set(ctx, family); err != nil {
		return &StoreError{Op: "create family", Err: err}
	}
	return nil
}

func (s *FirestoreStore) GetMember(ctx context.Context, familyID, userID string) (*Member, error) {
	snap, err := s.members(familyID).Doc(userID).Get(ctx)
	if err != nil {
		return nil, storeErr("get member", err)
	}
	member := &Member{}
	if err := snap.DataTo(member); err != nil {
		return nil, &StoreError{Op: "decode member", Err: err}
	}
	return member, nil
}

func (s *FirestoreStore) GetMembers(ctx context.Context, familyID string) ([]Member, error) {
	iter := s.members(familyID).Documents(ctx)
	defer iter.Stop()

	var members []Member
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, &StoreError{Op: "list members", Err: err}
		}
		member := Member{}
		if err := snap.DataTo(&member); err != nil {
			return nil, &StoreError{Op: "decode member", Err: err}
		}
		members = append(members, member)
	}
	return members, nil
}

func (s *FirestoreStore) PutMember(ctx context.Context, familyID string, member Member) error {
	if _, err := s.members(familyID).Doc(member.ID).Set(ctx, member); err != nil {
		return &StoreError{Op: "put member", Err: err}
	}
	return nil
}

func (s *FirestoreStore) GetEvent(ctx context.Context, familyID, id string) (*Event, error) {
	snap, err := s.events(familyID).Doc(id).Get(ctx)
	if err != nil {
		return nil, storeErr("get event", err)
	}
	event := &Event{}
	if err := snap.DataTo(event); err != nil {
		return nil, &StoreError{Op: "decode event", Err: err}
	}
	return event, nil
}

func (s *FirestoreStore) GetEvents(ctx context.Context, familyID string) ([]Event, error) {
	return s.collectEvents(s.events(familyID).Documents(ctx))
}

func (s *FirestoreStore) EventsStartingBetween(ctx context.Context, familyID string, from, to time.Time) ([]Event, error) {
	query := s.events(familyID).OrderBy("start", firestore.Asc).StartAt(from).EndAt(to)
	return s.collectEvents(query.Documents(ctx))
}

func (s *FirestoreStore) EventsEndingBetween(ctx context.Context, familyID string, from, to time.Time) ([]Event, error) {
	query := s.events(familyID).OrderBy("end", firestore.Asc).StartAt(from).EndAt(to)
	return s.collectEvents(query.Documents(ctx))
}

func (s *FirestoreStore) collectEvents(iter *firestore.DocumentIterator) ([]Event, error) {
	defer iter.Stop()

	var events []Event
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, &StoreError{Op: "list events", Err: err}
		}
		event := Event{}
		if err := snap.DataTo(&event); err != nil {
			return nil, &StoreError{Op: "decode event", Err: err}
		}
		events = append(events, event)
	}
	return events, nil
}

func (s *FirestoreStore) PutEvent(ctx context.Context, familyID string, event Event) error {
	if _, err := s.events(familyID).Doc(event.ID).Set(ctx, event); err != nil {
		return &StoreError{Op: "put event", Err: err}
	}
	return nil
}

func (s *FirestoreStore) DeleteEvent(ctx context.Context, familyID, id string) error {
	if _, err := s.events(familyID).Doc(id).Delete(ctx); err != nil {
		return &StoreError{Op: "delete event", Err: err}
	}
	return nil
}

func storeErr(op string, err error) error {
	if status.Code(err) == codes.NotFound {
		return ErrNotFound
	}
	return &StoreError{Op: op, Err: err}
}
