package entities

import "time"

// Transfer входящий перевод из выписки провайдера.
type Transfer struct {
	TxnID      string
	BankRef    string
	Amount     int64
	Memo       string
	ReceivedAt time.Time
}

// TransferCallback уведомление провайдера о поступлении. Доставляется at-least-once,
// может дублироваться и приходить раньше или позже опроса.
type TransferCallback struct {
	OrderRef string
	Amount   int64
	TxnID    string
	BankRef  string
	TxnDate  time.Time
}

// ReconcileResult итог сверки. Inconclusive означает, что провайдер не ответил
// и сверку можно повторить позже.
type ReconcileResult struct {
	Matched      bool
	AlreadyPaid  bool
	Inconclusive bool
	Payment      *Payment
}
