package generator

// EstimateRecordCount converts a target output size in megabytes into an
// approximate record count using a fixed average-bytes-per-record constant.
// The result floors to an integer; a target small enough to floor to zero is
// passed through as a valid empty batch, not an error. The estimate is a
// guidance value - actual output size varies with field content and format
// overhead.
func EstimateRecordCount(sizeMB float64, bytesPerRecord int) int {
	if sizeMB <= 0 || bytesPerRecord <= 0 {
		return 0
	}
	return int(sizeMB * 1024 * 1024 / float64(bytesPerRecord))
}
