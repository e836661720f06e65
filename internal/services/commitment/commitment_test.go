package commitment_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/battleship-go2/internal/dependencies/mocks"
	"github.com/mcoot/battleship-go2/internal/model"
	"github.com/mcoot/battleship-go2/internal/services/commitment"
)

type CommitmentSuite struct {
	suite.Suite
	random     *mocks.MockRandom
	placements []model.Placement
}

func TestCommitmentSuite(t *testing.T) {
	suite.Run(t, new(CommitmentSuite))
}

func (s *CommitmentSuite) SetupTest() {
	s.random = mocks.NewMockRandom()
	s.random.QueueBytes([]byte("0123456789012345678901234567890"))
	s.placements = []model.Placement{
		{Class: "Carrier", Length: 5, Origin: model.Position{Row: 0, Col: 0}, Direction: model.DirectionHorizontal},
		{Class: "Destroyer", Length: 2, Origin: model.Position{Row: 4, Col: 4}, Direction: model.DirectionVertical},
	}
}

func (s *CommitmentSuite) occupied() []model.Position {
	return []model.Position{
		{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 0, Col: 3}, {Row: 0, Col: 4},
		{Row: 4, Col: 4}, {Row: 5, Col: 4},
	}
}

func (s *CommitmentSuite) TestCommitThenVerify() {
	c, err := commitment.Commit(s.random, s.occupied())
	s.Require().NoError(err)
	s.Len(c.Root, 64)
	s.Len(c.Salt, 2*commitment.SaltSize)

	s.NoError(commitment.Verify(c, s.occupied()))
	s.NoError(commitment.VerifyPlacements(c, s.placements))
}

func (s *CommitmentSuite) TestDigestIsDeterministicAndOrderFree() {
	salt := []byte("salt")
	occ := s.occupied()
	first, err := commitment.Digest(salt, occ)
	s.Require().NoError(err)

	reversed := make([]model.Position, len(occ))
	for i, pos := range occ {
		reversed[len(occ)-1-i] = pos
	}
	second, err := commitment.Digest(salt, reversed)
	s.Require().NoError(err)
	s.Equal(first, second)
}

func (s *CommitmentSuite) TestDigestDependsOnSalt() {
	a, err := commitment.Digest([]byte("a"), s.occupied())
	s.Require().NoError(err)
	b, err := commitment.Digest([]byte("b"), s.occupied())
	s.Require().NoError(err)
	s.NotEqual(a, b)
}

func (s *CommitmentSuite) TestVerifyDetectsMovedShip() {
	c, err := commitment.Commit(s.random, s.occupied())
	s.Require().NoError(err)

	moved := s.placements
	moved[1].Origin = model.Position{Row: 6, Col: 6}
	s.ErrorIs(commitment.VerifyPlacements(c, moved), model.ErrCommitmentMismatch)
}

func (s *CommitmentSuite) TestVerifyRequiresRevealedSalt() {
	c, err := commitment.Commit(s.random, s.occupied())
	s.Require().NoError(err)
	c.Salt = ""
	s.ErrorIs(commitment.Verify(c, s.occupied()), model.ErrCommitmentMismatch)

	c.Salt = "not-hex"
	s.ErrorIs(commitment.Verify(c, s.occupied()), model.ErrCommitmentMismatch)
}

func (s *CommitmentSuite) TestDigestRejectsOffGridCell() {
	_, err := commitment.Digest([]byte("salt"), []model.Position{{Row: 10, Col: 0}})
	s.ErrorIs(err, model.ErrOutOfBounds)
}
