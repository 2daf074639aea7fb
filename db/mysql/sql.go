package mysql

type idRow struct {
	Id int64 `db:"id"`
}

func idsFromRows(rows []idRow) []int64 {
	ids := make([]int64, len(rows))
	for i, row := range rows {
		ids[i] = row.Id
	}
	return ids
}
