package contact

import (
	"context"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JordanMarcelino/contact-api/internal/auth"
	"github.com/JordanMarcelino/contact-api/internal/store"
	"github.com/JordanMarcelino/contact-api/internal/validate"
)

// fakeAddressRepo is an in-memory AddressRepository.
type fakeAddressRepo struct {
	addresses map[int64]*Address
	nextID    int64
}

func newFakeAddressRepo() *fakeAddressRepo {
	return &fakeAddressRepo{addresses: map[int64]*Address{}, nextID: 1}
}

func (r *fakeAddressRepo) Create(_ context.Context, _ store.DBTX, a *Address) error {
	a.ID = r.nextID
	r.nextID++
	copied := *a
	r.addresses[a.ID] = &copied
	return nil
}

func (r *fakeAddressRepo) FindAllByContact(_ context.Context, _ store.DBTX, contactID int64) ([]*Address, error) {
	var out []*Address
	for id := int64(1); id < r.nextID; id++ {
		if a, ok := r.addresses[id]; ok && a.ContactID == contactID {
			copied := *a
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeAddressRepo) FindByContactAndID(_ context.Context, _ store.DBTX, contactID, id int64) (*Address, error) {
	a, ok := r.addresses[id]
	if !ok || a.ContactID != contactID {
		return nil, ErrAddressNotFound
	}
	copied := *a
	return &copied, nil
}

func (r *fakeAddressRepo) FindFirstByContact(_ context.Context, _ store.DBTX, contactID int64) (*Address, error) {
	for id := int64(1); id < r.nextID; id++ {
		if a, ok := r.addresses[id]; ok && a.ContactID == contactID {
			copied := *a
			return &copied, nil
		}
	}
	return nil, ErrAddressNotFound
}

func (r *fakeAddressRepo) Update(_ context.Context, _ store.DBTX, a *Address) error {
	if _, ok := r.addresses[a.ID]; !ok {
		return ErrAddressNotFound
	}
	copied := *a
	r.addresses[a.ID] = &copied
	return nil
}

func (r *fakeAddressRepo) Delete(_ context.Context, _ store.DBTX, id int64) error {
	delete(r.addresses, id)
	return nil
}

func newAddressService(t *testing.T) (*AddressService, *fakeContactRepo, *fakeAddressRepo, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err, "failed to create mock")
	t.Cleanup(mock.Close)

	contacts := newFakeContactRepo()
	addresses := newFakeAddressRepo()
	return NewAddressService(mock, contacts, addresses), contacts, addresses, mock
}

func seedContact(t *testing.T, contacts *fakeContactRepo, userID int64) *Contact {
	t.Helper()
	c := &Contact{UserID: userID, FirstName: "Jane"}
	require.NoError(t, contacts.Create(context.Background(), nil, c))
	return c
}

func TestAddressService_Save(t *testing.T) {
	svc, contacts, addresses, mock := newAddressService(t)
	owner := &auth.User{ID: 1}
	c := seedContact(t, contacts, owner.ID)

	mock.ExpectBegin()
	mock.ExpectCommit()

	resp, err := svc.Save(context.Background(), owner, c.ID, CreateAddressRequest{
		Country: "Indonesia",
		City:    strPtr("Jakarta"),
	})
	require.NoError(t, err)
	assert.NotZero(t, resp.ID)
	assert.Equal(t, "Indonesia", resp.Country)

	stored := addresses.addresses[resp.ID]
	require.NotNil(t, stored)
	assert.Equal(t, c.ID, stored.ContactID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddressService_Save_ContactNotFound(t *testing.T) {
	svc, contacts, _, mock := newAddressService(t)
	owner := &auth.User{ID: 1}
	other := seedContact(t, contacts, 2)

	mock.ExpectBegin()
	mock.ExpectRollback()

	_, err := svc.Save(context.Background(), owner, other.ID, CreateAddressRequest{Country: "Indonesia"})
	require.ErrorIs(t, err, ErrContactNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddressService_Save_Invalid(t *testing.T) {
	svc, contacts, _, _ := newAddressService(t)
	owner := &auth.User{ID: 1}
	c := seedContact(t, contacts, owner.ID)

	_, err := svc.Save(context.Background(), owner, c.ID, CreateAddressRequest{Country: ""})

	var errs validate.Errors
	require.ErrorAs(t, err, &errs)
}

func TestAddressService_ListAndGet(t *testing.T) {
	svc, contacts, addresses, mock := newAddressService(t)
	owner := &auth.User{ID: 1}
	c := seedContact(t, contacts, owner.ID)

	mock.ExpectBegin()
	mock.ExpectCommit()
	created, err := svc.Save(context.Background(), owner, c.ID, CreateAddressRequest{Country: "Indonesia"})
	require.NoError(t, err)

	list, err := svc.List(context.Background(), owner, c.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)

	got, err := svc.Get(context.Background(), owner, c.ID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Indonesia", got.Country)

	_, err = svc.Get(context.Background(), owner, c.ID, 999)
	require.ErrorIs(t, err, ErrAddressNotFound)

	// The address is unreachable through another user's contact lookup.
	_, err = svc.Get(context.Background(), &auth.User{ID: 2}, c.ID, created.ID)
	require.ErrorIs(t, err, ErrContactNotFound)

	_ = addresses
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddressService_Update(t *testing.T) {
	svc, contacts, addresses, mock := newAddressService(t)
	owner := &auth.User{ID: 1}
	c := seedContact(t, contacts, owner.ID)

	mock.ExpectBegin()
	mock.ExpectCommit()
	created, err := svc.Save(context.Background(), owner, c.ID, CreateAddressRequest{
		Country: "Indonesia",
		City:    strPtr("Jakarta"),
		Street:  strPtr("Jl. Sudirman"),
	})
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.Update(context.Background(), owner, c.ID, UpdateAddressRequest{
		City: strPtr("Bandung"),
	})
	require.NoError(t, err)

	// Partial update: only the present field changes.
	assert.Equal(t, "Indonesia", resp.Country)
	require.NotNil(t, resp.City)
	assert.Equal(t, "Bandung", *resp.City)
	require.NotNil(t, resp.Street)
	assert.Equal(t, "Jl. Sudirman", *resp.Street)

	stored := addresses.addresses[created.ID]
	assert.Equal(t, "Bandung", *stored.City)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddressService_Update_NoAddress(t *testing.T) {
	svc, contacts, _, mock := newAddressService(t)
	owner := &auth.User{ID: 1}
	c := seedContact(t, contacts, owner.ID)

	mock.ExpectBegin()
	mock.ExpectRollback()

	_, err := svc.Update(context.Background(), owner, c.ID, UpdateAddressRequest{City: strPtr("Bandung")})
	require.ErrorIs(t, err, ErrAddressNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddressService_Delete(t *testing.T) {
	svc, contacts, addresses, mock := newAddressService(t)
	owner := &auth.User{ID: 1}
	c := seedContact(t, contacts, owner.ID)

	mock.ExpectBegin()
	mock.ExpectCommit()
	created, err := svc.Save(context.Background(), owner, c.ID, CreateAddressRequest{Country: "Indonesia"})
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectCommit()
	require.NoError(t, svc.Delete(context.Background(), owner, c.ID))
	assert.NotContains(t, addresses.addresses, created.ID)

	mock.ExpectBegin()
	mock.ExpectRollback()
	require.ErrorIs(t, svc.Delete(context.Background(), owner, c.ID), ErrAddressNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}
