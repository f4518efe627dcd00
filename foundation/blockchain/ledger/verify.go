package ledger

import "github.com/barrycoin/barrycoin/foundation/blockchain/database"

// VerifyIntegrity recalculates the hash of every block and checks the links
// between them. It returns false when any block was changed after it was
// mined or the chain was spliced.
func (l *Ledger) VerifyIntegrity() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	genesis := l.chain[0]
	if genesis.Number != 0 || genesis.PreviousHash != database.GenesisPreviousHash || genesis.Hash != genesis.ComputeHash() {
		l.evHandler("ledger: VerifyIntegrity: blk[0]: genesis block modified")
		return false
	}

	for i := 1; i < len(l.chain); i++ {
		current := l.chain[i]
		previous := l.chain[i-1]

		if current.Number != uint64(i) {
			l.evHandler("ledger: VerifyIntegrity: blk[%d]: block number[%d] doesn't match position", i, current.Number)
			return false
		}

		if current.Hash != current.ComputeHash() {
			l.evHandler("ledger: VerifyIntegrity: blk[%d]: stored hash doesn't match contents", i)
			return false
		}

		if current.PreviousHash != previous.Hash {
			l.evHandler("ledger: VerifyIntegrity: blk[%d]: previous hash doesn't match parent block", i)
			return false
		}

		if !database.IsHashSolved(l.difficulty, current.Hash) {
			l.evHandler("ledger: VerifyIntegrity: blk[%d]: hash not solved for difficulty[%d]", i, l.difficulty)
			return false
		}
	}

	return true
}
