// Package reducertest drives a reducer one action at a time and checks the
// resulting state.
//
//	reducertest.New[TodoState](t).
//	    GivenReducer(todos.Reducer, TodoState{}).
//	    WhenActionIsDispatched(todos.Add.New("x")).
//	    WhenActionIsDispatched(todos.Add.New("y")).
//	    ThenStateShouldEqual(TodoState{Items: []string{"x", "y"}})
//
// Failures are reported through a [TestingT], which *testing.T satisfies;
// the session never calls FailNow, so a failing check returns false and the
// test continues.
package reducertest
