// Package commitment binds the computer's fleet layout to a MiMC digest
// published at match creation and verifiable once the salt is revealed.
package commitment

import (
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"math/big"

	bnmimc "github.com/consensys/gnark-crypto/ecc/bn254/fr/mimc"

	"github.com/mcoot/battleship-go2/internal/dependencies/random"
	"github.com/mcoot/battleship-go2/internal/model"
	"github.com/mcoot/battleship-go2/internal/services/board"
)

// SaltSize keeps the salt below the bn254 scalar field modulus
const SaltSize = 31

// Commit draws a fresh salt and commits to the occupied cells
func Commit(rnd random.Random, occupied []model.Position) (model.FleetCommitment, error) {
	salt := rnd.Bytes(SaltSize)
	root, err := Digest(salt, occupied)
	if err != nil {
		return model.FleetCommitment{}, err
	}
	return model.FleetCommitment{
		Root: root,
		Salt: hex.EncodeToString(salt),
	}, nil
}

// Digest hashes the salt followed by one field element per grid cell,
// 1 for occupied and 0 for open water, in row-major order
func Digest(salt []byte, occupied []model.Position) (string, error) {
	cells := make(map[model.Position]bool, len(occupied))
	for _, pos := range occupied {
		if !pos.IsValid() {
			return "", fmt.Errorf("%w: %s", model.ErrOutOfBounds, pos)
		}
		cells[pos] = true
	}

	h := bnmimc.NewMiMC()
	if err := writeElement(h, new(big.Int).SetBytes(salt)); err != nil {
		return "", err
	}
	for _, pos := range model.AllPositions() {
		bit := big.NewInt(0)
		if cells[pos] {
			bit.SetInt64(1)
		}
		if err := writeElement(h, bit); err != nil {
			return "", err
		}
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// writeElement feeds x to the hash as a 32-byte big-endian field element
func writeElement(h hash.Hash, x *big.Int) error {
	b := x.Bytes()
	if len(b) > 32 {
		return errors.New("field element exceeds 32 bytes")
	}
	buf := make([]byte, 32)
	copy(buf[32-len(b):], b)
	if _, err := h.Write(buf); err != nil {
		return fmt.Errorf("failed to hash field element: %w", err)
	}
	return nil
}

// Verify checks a revealed commitment against the occupied cells
func Verify(c model.FleetCommitment, occupied []model.Position) error {
	if c.Salt == "" {
		return fmt.Errorf("%w: salt not revealed", model.ErrCommitmentMismatch)
	}
	salt, err := hex.DecodeString(c.Salt)
	if err != nil {
		return fmt.Errorf("%w: salt is not hex: %v", model.ErrCommitmentMismatch, err)
	}
	root, err := Digest(salt, occupied)
	if err != nil {
		return err
	}
	if root != c.Root {
		return model.ErrCommitmentMismatch
	}
	return nil
}

// VerifyPlacements rebuilds the board from placements and verifies it
func VerifyPlacements(c model.FleetCommitment, placements []model.Placement) error {
	b := board.New()
	for _, p := range placements {
		if _, err := b.PlaceNamedShip(p.Class, p.Length, p.Origin, p.Direction); err != nil {
			return fmt.Errorf("invalid placement %s at %s: %w", p.Class, p.Origin, err)
		}
	}
	return Verify(c, b.Occupied())
}
