package validate

// checkTimestamps only reminds of the entry timestamp format; entries aren't parsed.
func (c *Controller) checkTimestamps(r *recorder) (bool, error) {
	r.warn("REMINDER: Use format %s", c.cfg.Timestamp.Format)
	return true, nil
}
