package customer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCustomer(id, name string, vip bool) *Customer {
	return New(id, name, name+"@example.com", "0900123456", "ID"+id, "12 Nguyen Hue", time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), vip)
}

func TestRegistryCRUD(t *testing.T) {
	g := NewRegistry()

	assert.True(t, g.Add(sampleCustomer("C001", "Alice Tran", false)))
	assert.False(t, g.Add(sampleCustomer("C001", "Duplicate", false)))
	assert.False(t, g.Add(nil))
	assert.False(t, g.Add(&Customer{}))

	assert.Equal(t, 1, g.Count())
	assert.Equal(t, "Alice Tran", g.GetByID("C001").FullName)

	updated := sampleCustomer("C001", "Alice Tran-Le", true)
	assert.True(t, g.Update(updated))
	assert.True(t, g.GetByID("C001").VIP)
	assert.False(t, g.Update(sampleCustomer("C999", "Ghost", false)))

	assert.True(t, g.Delete("C001"))
	assert.False(t, g.Delete("C001"))
	assert.True(t, g.IsEmpty())
}

func TestRegistryGetAllKeepsInsertionOrder(t *testing.T) {
	g := NewRegistry()
	require.True(t, g.Add(sampleCustomer("C003", "Carol", false)))
	require.True(t, g.Add(sampleCustomer("C001", "Alice", false)))
	require.True(t, g.Add(sampleCustomer("C002", "Bob", false)))

	all := g.GetAll()
	require.Len(t, all, 3)
	assert.Equal(t, "C003", all[0].ID)
	assert.Equal(t, "C001", all[1].ID)
	assert.Equal(t, "C002", all[2].ID)
}

func TestRegistrySearch(t *testing.T) {
	g := NewRegistry()
	require.True(t, g.Add(sampleCustomer("C001", "Alice Tran", false)))
	require.True(t, g.Add(sampleCustomer("C002", "Bob Nguyen", true)))

	assert.Len(t, g.Search("alice"), 1)
	assert.Len(t, g.Search("NGUYEN"), 1)
	assert.Len(t, g.Search("C00"), 2)
	assert.Len(t, g.Search("0900"), 2)
	assert.Empty(t, g.Search("nobody"))
}

func TestRegistryVIPAndLoyalty(t *testing.T) {
	g := NewRegistry()
	alice := sampleCustomer("C001", "Alice", false)
	bob := sampleCustomer("C002", "Bob", true)
	alice.AddLoyaltyPoints(120)
	bob.AddLoyaltyPoints(30)
	require.True(t, g.Add(alice))
	require.True(t, g.Add(bob))

	assert.Equal(t, 1, g.VIPCount())
	assert.Len(t, g.FilterVIP(false), 1)
	assert.Len(t, g.FilterByMinLoyalty(100), 1)
	assert.Len(t, g.FilterByMinLoyalty(10), 2)
}

func TestRegistryLoadCustomers(t *testing.T) {
	g := NewRegistry()
	require.True(t, g.Add(sampleCustomer("OLD", "Old", false)))

	g.LoadCustomers([]*Customer{
		sampleCustomer("C001", "Alice", false),
		nil,
		{},
		sampleCustomer("C001", "Duplicate", false),
		sampleCustomer("C002", "Bob", false),
	})

	assert.Equal(t, 2, g.Count())
	assert.Nil(t, g.GetByID("OLD"))
	assert.Equal(t, "Alice", g.GetByID("C001").FullName)
}
