package npltk

import (
	"context"
	"fmt"

	pool "github.com/jolestar/go-commons-pool"
)

// NfaStateFn represents a state in a non-deterministic finite automaton.
// Functions of type NfaStateFn try to match a rune (Unicode code-point).
//
// The first argument is a Recognizer (see the definition of
// type Recognizer in this package), which carries this state function.
//
// NfaStateFn – after matching a rune – must return another NfaStateFn,
// which will then in turn be called to process the next rune. The process
// of matching a string will stop as soon as a NfaStateFn returns nil.
type NfaStateFn func(*Recognizer, rune) NfaStateFn

// A Recognizer represents an automaton to recognize sequences of runes
// (i.e. Unicode code-points). Its main functionality is performed by
// an embedded NfaStateFn. The first NfaStateFn to use is provided with
// the constructor.
//
// Recognizer's state functions must be careful to consume every matched rune,
// either by DoConsume or by DoAccept. Failing to do so will result in
// incorrect token spans.
//
// Semantics of Kind and UserData are up to the client and not used by
// the default mechanism.
type Recognizer struct {
	Kind      int         // kind of token to recognize; semantics are up to the client
	MatchLen  int         // number of runes consumed so far
	UserData  interface{} // clients may need to store additional information
	acceptLen int         // length of the longest accepted prefix
	nextStep  NfaStateFn  // next step of the automaton
}

// NewRecognizer creates a new Recognizer.
// This is rarely used, as clients rather should call NewPooledRecognizer().
//
// see NewPooledRecognizer.
func NewRecognizer(kind int, next NfaStateFn) *Recognizer {
	rec := &Recognizer{}
	rec.Kind = kind
	rec.nextStep = next
	return rec
}

// Recognizers are short-lived objects. To avoid multiple allocation of
// small objects we will pool them.
type recognizerPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalRecognizerPool *recognizerPool

func init() {
	globalRecognizerPool = &recognizerPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			rec := &Recognizer{}
			return rec, nil
		})
	globalRecognizerPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalRecognizerPool.opool = pool.NewObjectPool(globalRecognizerPool.ctx, factory, config)
}

// NewPooledRecognizer returns a new Recognizer, pre-filled with a token kind
// and a state function. The Recognizer is pooled for efficiency.
func NewPooledRecognizer(kind int, stateFn NfaStateFn) *Recognizer {
	o, err := globalRecognizerPool.opool.BorrowObject(globalRecognizerPool.ctx)
	if err != nil {
		CT().Errorf("cannot borrow recognizer from pool: %v", err)
		return NewRecognizer(kind, stateFn)
	}
	rec := o.(*Recognizer)
	rec.Kind = kind
	rec.nextStep = stateFn
	return rec
}

// Release clears the Recognizer and puts it back into the pool.
// Clients must not use a recognizer after releasing it.
func (rec *Recognizer) Release() {
	rec.Kind = 0
	rec.MatchLen = 0
	rec.UserData = nil
	rec.acceptLen = 0
	rec.nextStep = nil
	_ = globalRecognizerPool.opool.ReturnObject(globalRecognizerPool.ctx, rec)
}

// Simple stringer for debugging purposes.
func (rec *Recognizer) String() string {
	if rec == nil {
		return "[nil rule]"
	}
	return fmt.Sprintf("[%d -> done=%v, accepted=%d]", rec.Kind, rec.Done(), rec.acceptLen)
}

// Done signals that a Recognizer is done matching runes.
// If Accepted() > 0 it has accepted a sequence of runes,
// otherwise it has aborted to further try a match.
func (rec *Recognizer) Done() bool {
	return rec.nextStep == nil
}

// Accepted returns the length (in runes) of the longest prefix the
// recognizer has accepted so far. 0 means no match.
func (rec *Recognizer) Accepted() int {
	return rec.acceptLen
}

// RuneEvent lets the recognizer consume the next rune.
func (rec *Recognizer) RuneEvent(r rune) {
	if rec.nextStep != nil {
		rec.nextStep = rec.nextStep(rec, r)
	}
}

// EndOfText signals that no more runes will follow. The recognizer stops,
// keeping its longest accepted prefix.
func (rec *Recognizer) EndOfText() {
	rec.nextStep = nil
}

// --- Standard Recognizer Rules ----------------------------------------

// DoAbort returns a state function which signals abort. A prefix accepted
// earlier stays accepted.
func DoAbort(rec *Recognizer) NfaStateFn {
	return nil
}

// DoConsume consumes the current rune without accepting and continues
// with state function next.
func DoConsume(rec *Recognizer, next NfaStateFn) NfaStateFn {
	rec.MatchLen++
	return next
}

// DoAccept consumes the current rune and marks the runes matched so far as
// accepted. Matching continues with next; next may be nil to stop.
func DoAccept(rec *Recognizer, next NfaStateFn) NfaStateFn {
	rec.MatchLen++
	rec.acceptLen = rec.MatchLen
	return next
}

// --- Rune Publishing and Subscription ---------------------------------

// A RunePublisher notifies subscribed recognizers with rune events: a new
// rune has been read and every recognizer which is not yet done has to react
// to it.
//
// Subscription order is significant: it denotes precedence between
// recognizers which accept overlapping input.
type RunePublisher struct {
	subscribers []*Recognizer
}

// NewRunePublisher creates a new RunePublisher.
func NewRunePublisher() *RunePublisher {
	return &RunePublisher{subscribers: make([]*Recognizer, 0, 8)}
}

// SubscribeMe lets a recognizer subscribe to a RunePublisher.
func (rpub *RunePublisher) SubscribeMe(rec *Recognizer) *RunePublisher {
	rpub.subscribers = append(rpub.subscribers, rec)
	return rpub
}

// Len returns the number of subscribers.
func (rpub *RunePublisher) Len() int {
	return len(rpub.subscribers)
}

// PublishRuneEvent triggers a rune event notification to all active
// subscribers. It returns the number of subscribers still active afterwards.
func (rpub *RunePublisher) PublishRuneEvent(r rune) int {
	active := 0
	for _, rec := range rpub.subscribers {
		if rec.Done() {
			continue
		}
		rec.RuneEvent(r)
		if !rec.Done() {
			active++
		}
	}
	return active
}

// PublishEndOfText signals end of input to all subscribers.
func (rpub *RunePublisher) PublishEndOfText() {
	for _, rec := range rpub.subscribers {
		rec.EndOfText()
	}
}

// Winner returns the first subscriber (in subscription order) which has
// accepted input, or nil if none did. Winner should be called after all
// subscribers are done.
func (rpub *RunePublisher) Winner() *Recognizer {
	for _, rec := range rpub.subscribers {
		if rec.Accepted() > 0 {
			return rec
		}
	}
	return nil
}

// UnsubscribeAll releases all subscribers into the recognizer pool and
// empties the publisher for re-use.
func (rpub *RunePublisher) UnsubscribeAll() {
	for i, rec := range rpub.subscribers {
		rec.Release()
		rpub.subscribers[i] = nil
	}
	rpub.subscribers = rpub.subscribers[:0]
}
