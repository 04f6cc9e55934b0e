package repository

import "errors"

// 見つからない
var ErrNotFound = errors.New("not found")

// 一意制約違反（sku / code / bill_no / email / username）
var ErrDuplicate = errors.New("duplicate")
