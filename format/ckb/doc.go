// Package ckb provides molecule codecs of the CKB blockchain types that are
// commonly carried as value data of open transaction records: OutPoint,
// Script and ScriptOpt.
package ckb
