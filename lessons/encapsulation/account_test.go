package encapsulation_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"govocab/lessons/encapsulation"
)

func ExampleAccount() {
	var a encapsulation.Account
	a.Deposit(100)
	a.Deposit(250)
	fmt.Println(a.Balance())
	// Output: 350
}

func TestZeroValueAccount(t *testing.T) {
	var a encapsulation.Account
	assert.Equal(t, 0, a.Balance(), "zero value is an empty, usable account")
}

func TestDepositAccumulates(t *testing.T) {
	var a encapsulation.Account
	for _, amount := range []int{1, 2, 3, 4} {
		a.Deposit(amount)
	}
	assert.Equal(t, 10, a.Balance())
}

func TestDepositAcceptsAnyAmount(t *testing.T) {
	// The methods are the only gate; they impose no amount policy.
	var a encapsulation.Account
	a.Deposit(-50)
	assert.Equal(t, -50, a.Balance())
}
