package dfa

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	t.Run("valid description", func(t *testing.T) {
		assert.Nil(t, makeSharedSink().Validate())
		assert.Nil(t, makeSingleton().Validate())
	})

	t.Run("zero states", func(t *testing.T) {
		err := New(0, nil, nil).Validate()
		assert.ErrorIs(t, err, ErrStateCount)
	})

	t.Run("negative states", func(t *testing.T) {
		err := New(-3, nil, nil).Validate()
		assert.ErrorIs(t, err, ErrStateCount)
	})

	t.Run("final state out of range", func(t *testing.T) {
		err := New(2, []int{5}, [][]int{{0, 1}, {1, 0}}).Validate()
		assert.ErrorIs(t, err, ErrFinalRange)
	})

	t.Run("negative final state", func(t *testing.T) {
		err := New(2, []int{-1}, [][]int{{0, 1}, {1, 0}}).Validate()
		assert.ErrorIs(t, err, ErrFinalRange)
	})

	t.Run("row count mismatch", func(t *testing.T) {
		err := New(3, []int{0}, [][]int{{0, 1}, {1, 0}}).Validate()
		assert.ErrorIs(t, err, ErrRowCount)
	})

	t.Run("transition target out of range", func(t *testing.T) {
		err := New(2, []int{0}, [][]int{{0, 9}, {1, 0}}).Validate()
		assert.ErrorIs(t, err, ErrTargetRange)

		err = New(2, []int{0}, [][]int{{0, 1}, {-2, 0}}).Validate()
		assert.ErrorIs(t, err, ErrTargetRange)
	})

	t.Run("ragged rows", func(t *testing.T) {
		err := New(2, []int{0}, [][]int{{0, 1}, {1}}).Validate()
		assert.ErrorIs(t, err, ErrTransitionArity)
	})

	t.Run("no side effects", func(t *testing.T) {
		d := New(2, []int{5}, [][]int{{0, 1}, {1, 0}})
		_ = d.Validate()
		_ = d.Validate()
		assert.Equal(t, []int{5}, d.Finals())
		assert.Equal(t, 2, d.NumStates())
	})
}
