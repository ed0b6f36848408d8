package services

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// toJSONArray marshals a string slice into a JSONB column value. A nil slice
// becomes an empty array, never null.
func toJSONArray(items []string) datatypes.JSON {
	if items == nil {
		items = []string{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return datatypes.JSON("[]")
	}
	return datatypes.JSON(data)
}
