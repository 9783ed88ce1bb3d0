package issuance

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"isbnapi/internal/isbn"
)

func boolPtr(b bool) *bool { return &b }
func intPtr(n int) *int    { return &n }

func TestService_Generate(t *testing.T) {
	svc := NewService(isbn.DefaultScheme)
	ctx := context.Background()

	t.Run("sequential", func(t *testing.T) {
		out, err := svc.Generate(ctx, GenerateRequest{CountryCode: "3", PublisherCode: "16", UseMultiples: boolPtr(false)})
		require.NoError(t, err)
		assert.Equal(t, "3916000002931", out.ISBN)
		assert.True(t, out.Valid)
		assert.Equal(t, "16", out.PublisherCode)
		assert.Equal(t, "000002931", out.BookNumber)
		assert.Equal(t, int64(1), out.NextOffset)

		v, err := svc.Validate(ctx, ValidateRequest{ISBN: out.ISBN})
		require.NoError(t, err)
		assert.True(t, v.Valid)
		assert.Equal(t, v.ExpectedRemainders, v.ActualRemainders)
		assert.Empty(t, v.MismatchedModuli)
		assert.Empty(t, v.CorrectedISBN)
	})

	t.Run("defaults", func(t *testing.T) {
		out, err := svc.Generate(ctx, GenerateRequest{})
		require.NoError(t, err)
		assert.Equal(t, "3", out.CountryCode)
		assert.Equal(t, "16", out.PublisherCode)
		// use_multiples defaults to true.
		assert.Equal(t, int64(isbn.DefaultScheme.MultipleStride), out.NextOffset)
	})

	t.Run("publisher padded", func(t *testing.T) {
		out, err := svc.Generate(ctx, GenerateRequest{CountryCode: "3", PublisherCode: "5"})
		require.NoError(t, err)
		assert.Equal(t, "05", out.PublisherCode)
		assert.Equal(t, "3905", out.ISBN[:4])
	})

	t.Run("offset continues sequence", func(t *testing.T) {
		out, err := svc.Generate(ctx, GenerateRequest{CountryCode: "3", PublisherCode: "16", UseMultiples: boolPtr(false), Offset: 1})
		require.NoError(t, err)
		assert.Equal(t, "3916000017946", out.ISBN)
	})

	t.Run("publisher too wide", func(t *testing.T) {
		_, err := svc.Generate(ctx, GenerateRequest{CountryCode: "3", PublisherCode: "123"})
		assert.ErrorIs(t, err, isbn.ErrMalformedInput)
	})
}

func TestService_Validate(t *testing.T) {
	svc := NewService(isbn.DefaultScheme)

	out, err := svc.Validate(context.Background(), ValidateRequest{ISBN: "9783161484100"})
	require.NoError(t, err)
	assert.False(t, out.Valid)
	assert.Equal(t, "9", out.CountryCode)
	assert.Equal(t, "83", out.PublisherCode)
	assert.Equal(t, isbn.Vector{2, 3, 6, 6, 5}, out.ExpectedRemainders)
	assert.Equal(t, isbn.Vector{1, 0, 4, 4, 4}, out.ActualRemainders)
	assert.Equal(t, []int64{3, 5, 7, 11, 13}, out.MismatchedModuli)
	assert.Equal(t, "9983000002058", out.CorrectedISBN)

	_, err = svc.Validate(context.Background(), ValidateRequest{ISBN: "97831614841"})
	assert.ErrorIs(t, err, isbn.ErrMalformedInput)
}

func TestService_BatchGenerate(t *testing.T) {
	svc := NewService(isbn.DefaultScheme)
	ctx := context.Background()

	out, err := svc.BatchGenerate(ctx, BatchRequest{CountryCode: "3", PublisherCode: "16", UseMultiples: boolPtr(false)})
	require.NoError(t, err)
	assert.Equal(t, DefaultCount, out.Count)
	assert.Len(t, out.ISBNs, DefaultCount)
	assert.Equal(t, "316", out.Prefix)
	assert.Equal(t, int64(DefaultCount), out.NextOffset)

	next, err := svc.BatchGenerate(ctx, BatchRequest{CountryCode: "3", PublisherCode: "16", UseMultiples: boolPtr(false), Count: intPtr(5), Offset: out.NextOffset})
	require.NoError(t, err)
	for _, code := range next.ISBNs {
		assert.NotContains(t, out.ISBNs, code)
	}

	for _, n := range []int{0, 251} {
		_, err := svc.BatchGenerate(ctx, BatchRequest{Count: intPtr(n)})
		assert.ErrorIs(t, err, isbn.ErrInvalidCount)
	}

	full, err := svc.BatchGenerate(ctx, BatchRequest{Count: intPtr(250)})
	require.NoError(t, err)
	assert.Equal(t, 250, full.Count)
}

func TestService_ValidateSurfacesInvariantErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	engine := NewMockEngine(ctrl)
	svc := NewService(engine)

	d, err := isbn.Parse("9783161484100")
	require.NoError(t, err)
	broken := fmt.Errorf("%w: test", isbn.ErrInvariantBroken)

	engine.EXPECT().ValidateCode("9783161484100").Return(isbn.Result{Valid: false}, nil)
	engine.EXPECT().Split(d).Return("9", "7", "83", "161484100")
	engine.EXPECT().Generate(isbn.Request{Country: "9", Publisher: "83"}, isbn.Cursor(0)).Return(isbn.Digits{}, isbn.Cursor(0), broken)

	_, err = svc.Validate(context.Background(), ValidateRequest{ISBN: "9783161484100"})
	assert.True(t, errors.Is(err, isbn.ErrInvariantBroken))
}

func TestService_ValidateWithoutCorrection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	engine := NewMockEngine(ctrl)
	svc := NewService(engine)

	d, err := isbn.Parse("1234945678000")
	require.NoError(t, err)

	engine.EXPECT().ValidateCode("1234945678000").Return(isbn.Result{Expected: isbn.Vector{1}}, nil)
	engine.EXPECT().Split(d).Return("1", "2", "34", "945678000")
	engine.EXPECT().Generate(gomock.Any(), isbn.Cursor(0)).Return(isbn.Digits{}, isbn.Cursor(0), isbn.ErrCapacityExhausted)

	out, err := svc.Validate(context.Background(), ValidateRequest{ISBN: "1234945678000"})
	require.NoError(t, err)
	assert.False(t, out.Valid)
	assert.Empty(t, out.CorrectedISBN)
	assert.Equal(t, []int64{3}, out.MismatchedModuli)
}
