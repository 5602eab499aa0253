package helper

import (
	"hash/fnv"

	"gorm.io/gorm"
)

// LockKey meringkas scope lock (mis. "semester", tahunAjaranID) jadi
// satu key int64 untuk pg_advisory_xact_lock.
func LockKey(parts ...string) int64 {
	h := fnv.New64a()
	for _, p := range parts {
		_, _ = h.Write([]byte(p))
		_, _ = h.Write([]byte{0})
	}
	return int64(h.Sum64())
}

// AdvisoryXactLock menahan advisory lock sampai transaksi selesai,
// menserialisasikan read-then-write pada scope yang sama (aktivasi
// periode, insert jadwal). Lepas otomatis saat commit/rollback.
// Fitur khusus Postgres; dialek lain (SQLite di test) dilewati.
func AdvisoryXactLock(tx *gorm.DB, key int64) error {
	if tx.Dialector.Name() != "postgres" {
		return nil
	}
	return tx.Exec("SELECT pg_advisory_xact_lock(?)", key).Error
}
