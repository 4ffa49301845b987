package journal

import (
	"encoding/binary"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/lightningnetwork/lnd/kvdb"
	"github.com/pkg/errors"
)

var (
	// seq -> record
	recordsBucket = []byte("records")
	// tx hash -> seq
	txHashBucket = []byte("tx_hashes")

	ErrNotFound = errors.New("journal record not found")
)

const defaultDBTimeout = 10 * time.Second

// Record is the local trace of one transaction broadcast by this client.
type Record struct {
	Seq       uint64    `json:"seq"`
	TxHash    string    `json:"tx_hash"`
	Height    int64     `json:"height"`
	Sender    string    `json:"sender"`
	Contracts []string  `json:"contracts"`
	Actions   []string  `json:"actions"`
	Code      uint32    `json:"code"`
	Codespace string    `json:"codespace,omitempty"`
	Memo      string    `json:"memo,omitempty"`
	Time      time.Time `json:"time"`
}

// Journal is an append-only store of the transactions sent by this client.
type Journal struct {
	db kvdb.Backend
}

// Open opens (or creates) the bolt journal file at path.
func Open(path string, timeout time.Duration) (*Journal, error) {
	if timeout == 0 {
		timeout = defaultDBTimeout
	}

	dir, file := filepath.Split(filepath.Clean(path))
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, errors.Wrapf(err, "failed to create journal dir %s", dir)
	}

	db, err := kvdb.GetBoltBackend(&kvdb.BoltBackendConfig{
		DBPath:            dir,
		DBFileName:        file,
		NoFreelistSync:    true,
		AutoCompact:       false,
		AutoCompactMinAge: time.Hour,
		DBTimeout:         timeout,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open journal db %s", path)
	}

	return New(db)
}

// New wraps an opened backend and creates the buckets.
func New(db kvdb.Backend) (*Journal, error) {
	err := kvdb.Update(db, func(tx kvdb.RwTx) error {
		if _, err := tx.CreateTopLevelBucket(recordsBucket); err != nil {
			return err
		}
		_, err := tx.CreateTopLevelBucket(txHashBucket)
		return err
	}, func() {})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create journal buckets")
	}

	return &Journal{db: db}, nil
}

func (j *Journal) Close() error {
	return j.db.Close()
}

func seqKey(seq uint64) []byte {
	var k [8]byte
	binary.BigEndian.PutUint64(k[:], seq)
	return k[:]
}

// Record appends r, its Seq is assigned by the journal.
func (j *Journal) Record(r *Record) error {
	if r.Time.IsZero() {
		r.Time = time.Now().UTC()
	}

	return kvdb.Update(j.db, func(tx kvdb.RwTx) error {
		records := tx.ReadWriteBucket(recordsBucket)
		hashes := tx.ReadWriteBucket(txHashBucket)

		seq, err := records.NextSequence()
		if err != nil {
			return err
		}
		r.Seq = seq

		bz, err := json.Marshal(r)
		if err != nil {
			return errors.Wrap(err, "marshal journal record failed")
		}

		key := seqKey(seq)
		if err := records.Put(key, bz); err != nil {
			return err
		}

		if r.TxHash == "" {
			return nil
		}

		return hashes.Put([]byte(r.TxHash), key)
	}, func() {})
}

// Get returns the record of txHash.
func (j *Journal) Get(txHash string) (*Record, error) {
	var res *Record

	err := kvdb.View(j.db, func(tx kvdb.RTx) error {
		key := tx.ReadBucket(txHashBucket).Get([]byte(txHash))
		if key == nil {
			return ErrNotFound
		}

		bz := tx.ReadBucket(recordsBucket).Get(key)
		if bz == nil {
			return ErrNotFound
		}

		var r Record
		if err := json.Unmarshal(bz, &r); err != nil {
			return errors.Wrap(err, "unmarshal journal record failed")
		}
		res = &r

		return nil
	}, func() {
		res = nil
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}

// List returns at most limit records, newest first. Zero limit returns all.
func (j *Journal) List(limit int) ([]*Record, error) {
	var res []*Record

	err := kvdb.View(j.db, func(tx kvdb.RTx) error {
		cursor := tx.ReadBucket(recordsBucket).ReadCursor()
		for k, v := cursor.Last(); k != nil; k, v = cursor.Prev() {
			if limit > 0 && len(res) >= limit {
				break
			}

			var r Record
			if err := json.Unmarshal(v, &r); err != nil {
				return errors.Wrapf(err, "unmarshal journal record %x failed", k)
			}
			res = append(res, &r)
		}

		return nil
	}, func() {
		res = nil
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}
