package services

import (
	"testing"

	"investio/internal/testutil"
)

func TestCreateClient(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewClientService(db)

		client, err := svc.CreateClient("Maria Souza", "12345678901", "maria@test.com")
		testutil.AssertNoError(t, err)

		if client.ID == 0 {
			t.Fatal("expected non-zero client ID")
		}
		if client.ExternalKey == "" {
			t.Error("expected external key to be assigned on create")
		}
	})

	t.Run("duplicate_document", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewClientService(db)

		_, err := svc.CreateClient("Maria Souza", "12345678901", "maria@test.com")
		testutil.AssertNoError(t, err)

		_, err = svc.CreateClient("Other Maria", "12345678901", "other@test.com")
		testutil.AssertAppError(t, err, "DUPLICATE_DOCUMENT")
	})
}

func TestUpdateClient(t *testing.T) {
	t.Run("updates_name_and_email", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewClientService(db)
		client := testutil.CreateTestClient(t, db)

		updated, err := svc.UpdateClient(client.ID, "New Name", "new@test.com")
		testutil.AssertNoError(t, err)

		if updated.Name != "New Name" || updated.Email != "new@test.com" {
			t.Errorf("expected updated fields, got %q %q", updated.Name, updated.Email)
		}
		if updated.Document != client.Document {
			t.Error("document must not change on update")
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewClientService(db)

		_, err := svc.UpdateClient(999, "Name", "")
		testutil.AssertAppError(t, err, "CLIENT_NOT_FOUND")
	})
}

func TestDeleteClient(t *testing.T) {
	t.Run("soft_deletes", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewClientService(db)
		client := testutil.CreateTestClient(t, db)

		testutil.AssertNoError(t, svc.DeleteClient(client.ID))

		_, err := svc.GetClientByID(client.ID)
		testutil.AssertAppError(t, err, "CLIENT_NOT_FOUND")
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewClientService(db)

		err := svc.DeleteClient(999)
		testutil.AssertAppError(t, err, "CLIENT_NOT_FOUND")
	})
}

func TestGetClients(t *testing.T) {
	t.Run("paginated", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewClientService(db)

		for i := 0; i < 5; i++ {
			testutil.CreateTestClient(t, db)
		}

		result, err := svc.GetClients(pageRequest(2, 2))
		testutil.AssertNoError(t, err)

		if result.TotalItems != 5 {
			t.Errorf("expected 5 total items, got %d", result.TotalItems)
		}
		if len(result.Data) != 2 {
			t.Errorf("expected 2 items on page 2, got %d", len(result.Data))
		}
		if result.TotalPages != 3 {
			t.Errorf("expected 3 total pages, got %d", result.TotalPages)
		}
	})
}
