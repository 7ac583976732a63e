package metadata

/** @brief Runs the job. The returned value is handed to OnComplete. */
type JobStart func() (interface{}, error)

/** @brief Invoked when a job successfully completes. */
type JobOnComplete func(result interface{})

/** @brief Invoked when a job fails. */
type JobOnFailure func(err error)

/**
 * @brief Describes a job to be run by the job system.
 */
type JobTask struct {
	/** @brief Used in log lines. */
	Name string
	/** @brief Required. */
	OnStart JobStart
	/** @brief Optional. */
	OnComplete JobOnComplete
	/** @brief Optional. */
	OnFailure JobOnFailure
}
