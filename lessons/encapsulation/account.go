package encapsulation

// Account keeps a balance that can only change through its methods. The
// zero value is an open account holding nothing.
type Account struct {
	balance int
}

// Deposit adds amount to the balance.
func (a *Account) Deposit(amount int) {
	a.balance += amount
}

// Balance reports the current balance.
func (a *Account) Balance() int {
	return a.balance
}
