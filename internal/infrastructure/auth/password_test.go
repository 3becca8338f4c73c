package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	t.Run("hash difere do plaintext", func(t *testing.T) {
		hash, err := hasher.Hash("secreta123")
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if hash == "secreta123" {
			t.Error("hash não pode ser igual ao plaintext")
		}
	})

	t.Run("dois hashes do mesmo plaintext diferem pelo salt", func(t *testing.T) {
		h1, err := hasher.Hash("secreta123")
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		h2, err := hasher.Hash("secreta123")
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}

		if h1 == h2 {
			t.Error("esperava hashes distintos para o mesmo plaintext")
		}
		if !hasher.Verify("secreta123", h1) || !hasher.Verify("secreta123", h2) {
			t.Error("ambos os hashes devem verificar contra o plaintext original")
		}
	})
}

func TestBcryptHasher_Verify(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	hash, err := hasher.Hash("secreta123")
	if err != nil {
		t.Fatalf("falha ao gerar hash: %v", err)
	}

	t.Run("senha correta verifica", func(t *testing.T) {
		if !hasher.Verify("secreta123", hash) {
			t.Error("esperava true para a senha correta")
		}
	})

	t.Run("senha incorreta não verifica", func(t *testing.T) {
		if hasher.Verify("outra-senha", hash) {
			t.Error("esperava false para senha incorreta")
		}
	})

	t.Run("hash malformado retorna false sem erro", func(t *testing.T) {
		if hasher.Verify("secreta123", "nao-e-um-hash-bcrypt") {
			t.Error("esperava false para hash malformado")
		}
	})

	t.Run("hash vazio retorna false", func(t *testing.T) {
		if hasher.Verify("secreta123", "") {
			t.Error("esperava false para hash vazio")
		}
	})
}

func TestNewBcryptHasherWithCost(t *testing.T) {
	t.Run("custo fora da faixa cai no padrão", func(t *testing.T) {
		hasher := NewBcryptHasherWithCost(99)

		hash, err := hasher.Hash("secreta123")
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		cost, err := bcrypt.Cost([]byte(hash))
		if err != nil {
			t.Fatalf("falha ao ler custo do hash: %v", err)
		}
		if cost != bcrypt.DefaultCost {
			t.Errorf("esperava custo %d, obteve %d", bcrypt.DefaultCost, cost)
		}
	})
}
