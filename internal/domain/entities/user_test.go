package entities

import (
	"testing"
	"time"
)

func validUser() *User {
	url := "https://example.com/foto.png"
	return &User{
		ID:                1,
		Name:              "Juan",
		Surname:           "García",
		Username:          "juang",
		Email:             "juan@example.com",
		PasswordHash:      "$2a$10$abcdefghijklmnopqrstuv",
		Town:              "Sevilla",
		Status:            StatusConnected,
		ProfilePictureURL: &url,
		LastSeenAt:        time.Now(),
		SeekingCompany:    true,
		Visible:           true,
		CreatedAt:         time.Now(),
	}
}

func TestUser_Validate(t *testing.T) {
	t.Run("usuário completo passa", func(t *testing.T) {
		if err := validUser().Validate(); err != nil {
			t.Errorf("esperava sucesso, obteve erro: %v", err)
		}
	})

	t.Run("email malformado é rejeitado", func(t *testing.T) {
		u := validUser()
		u.Email = "nao-e-email"
		if err := u.Validate(); err == nil {
			t.Error("esperava erro de validação")
		}
	})

	t.Run("status fora do enum é rejeitado", func(t *testing.T) {
		u := validUser()
		u.Status = "ausente"
		if err := u.Validate(); err == nil {
			t.Error("esperava erro de validação")
		}
	})

	t.Run("hash de senha ausente é rejeitado", func(t *testing.T) {
		u := validUser()
		u.PasswordHash = ""
		if err := u.Validate(); err == nil {
			t.Error("esperava erro de validação")
		}
	})

	t.Run("campos opcionais podem ficar nulos", func(t *testing.T) {
		u := validUser()
		u.ProfilePictureURL = nil
		u.Bio = nil
		u.Phone = nil
		u.DegreeID = nil
		if err := u.Validate(); err != nil {
			t.Errorf("esperava sucesso, obteve erro: %v", err)
		}
	})
}

func TestDefaultProfilePictureURL(t *testing.T) {
	got := DefaultProfilePictureURL("Juan", "García")
	want := "https://ui-avatars.com/api/?uppercase=false&name=Juan+García"

	if got != want {
		t.Errorf("esperava %q, obteve %q", want, got)
	}

	// Determinística para a mesma entrada
	if got != DefaultProfilePictureURL("Juan", "García") {
		t.Error("esperava URL determinística")
	}
}

func TestUser_SoftDelete(t *testing.T) {
	u := validUser()

	if u.IsDeleted() {
		t.Fatal("usuário novo não deveria estar removido")
	}

	u.SoftDelete()

	if !u.IsDeleted() {
		t.Error("esperava usuário marcado como removido")
	}
}

func TestUser_Presence(t *testing.T) {
	t.Run("desconectar registra a última conexão", func(t *testing.T) {
		u := validUser()
		lastSeen := time.Now().Add(time.Minute)

		u.MarkDisconnected(lastSeen)

		if u.Status != StatusDisconnected {
			t.Errorf("esperava status %q, obteve %q", StatusDisconnected, u.Status)
		}
		if !u.LastSeenAt.Equal(lastSeen) {
			t.Error("esperava LastSeenAt atualizado")
		}
	})

	t.Run("conectar não mexe na última conexão", func(t *testing.T) {
		u := validUser()
		before := u.LastSeenAt

		u.MarkConnected()

		if u.Status != StatusConnected {
			t.Errorf("esperava status %q, obteve %q", StatusConnected, u.Status)
		}
		if !u.LastSeenAt.Equal(before) {
			t.Error("LastSeenAt não deveria mudar ao conectar")
		}
	})
}
